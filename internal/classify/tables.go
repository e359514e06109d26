package classify

// commonWebColors are grays, whites and blacks that almost never carry brand
// meaning regardless of how often they occur.
var commonWebColors = map[string]bool{
	"#ffffff": true, "#000000": true,
	"#fafafa": true, "#f8f8f8": true, "#f5f5f5": true, "#f0f0f0": true,
	"#ededed": true, "#eeeeee": true, "#e5e5e5": true, "#e0e0e0": true,
	"#dddddd": true, "#d3d3d3": true, "#cccccc": true, "#bbbbbb": true,
	"#aaaaaa": true, "#999999": true, "#888888": true, "#808080": true,
	"#777777": true, "#666666": true, "#555555": true, "#444444": true,
	"#333333": true, "#222222": true, "#1a1a1a": true, "#111111": true,
}

// browserDefaultColors are the stock link/visited/focus blues and purples
// user agents paint when a page never chose its own.
var browserDefaultColors = map[string]bool{
	"#0000ee": true, // default link
	"#551a8b": true, // default visited
	"#0000ff": true,
	"#800080": true,
	"#4d90fe": true, // focus ring
	"#005fcc": true,
	"#1558d6": true,
}

// frameworkColors lists the stock palette each UI framework ships with.
var frameworkColors = map[string][]string{
	"bootstrap": {
		"#0d6efd", "#6c757d", "#198754", "#dc3545", "#ffc107", "#0dcaf0",
		"#f8f9fa", "#212529", "#007bff", "#0056b3", "#28a745", "#17a2b8",
	},
	"material": {
		"#6200ee", "#3700b3", "#03dac6", "#018786", "#b00020", "#6750a4",
		"#2196f3", "#1976d2", "#f44336", "#4caf50", "#ff9800", "#9c27b0",
	},
	"tailwind": {
		"#3b82f6", "#2563eb", "#1d4ed8", "#ef4444", "#dc2626", "#22c55e",
		"#16a34a", "#6366f1", "#8b5cf6", "#f59e0b", "#06b6d4", "#ec4899",
	},
	"semantic": {
		"#2185d0", "#21ba45", "#db2828", "#fbbd08", "#f2711c", "#a333c8",
		"#00b5ad", "#e03997",
	},
	"antd": {
		"#1890ff", "#096dd9", "#52c41a", "#f5222d", "#faad14", "#722ed1",
		"#13c2c2", "#eb2f96",
	},
}

// frameworkSignature holds the detection patterns scored against the page.
type frameworkSignature struct {
	classFragments []string // matched against HTML class attributes
	varPrefixes    []string // matched against CSS custom-property names
	selectorHints  []string // matched against raw CSS selectors
	threshold      int
}

var frameworkSignatures = map[string]frameworkSignature{
	"bootstrap": {
		classFragments: []string{"btn-primary", "navbar", "container-fluid", "col-md-", "col-sm-", "form-control", "d-flex"},
		varPrefixes:    []string{"--bs-"},
		selectorHints:  []string{".btn-", ".navbar", ".form-control"},
		threshold:      2,
	},
	"material": {
		classFragments: []string{"mdc-", "mat-", "md-button", "mui"},
		varPrefixes:    []string{"--mdc-", "--md-", "--mui-"},
		selectorHints:  []string{".mdc-", ".mat-"},
		threshold:      2,
	},
	"tailwind": {
		classFragments: []string{"bg-blue-", "text-gray-", "flex items-center", "px-4 py-2", "rounded-lg", "hover:bg-"},
		varPrefixes:    []string{"--tw-"},
		selectorHints:  []string{".bg-", ".text-"},
		threshold:      2,
	},
	"semantic": {
		classFragments: []string{"ui button", "ui menu", "ui container", "ui grid"},
		varPrefixes:    []string{},
		selectorHints:  []string{".ui.button", ".ui.menu"},
		threshold:      2,
	},
	"antd": {
		classFragments: []string{"ant-btn", "ant-menu", "ant-layout", "ant-form"},
		varPrefixes:    []string{"--ant-"},
		selectorHints:  []string{".ant-"},
		threshold:      2,
	},
}
