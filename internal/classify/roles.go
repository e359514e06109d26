package classify

// Role is the brand-semantic category assigned to a color.
type Role string

const (
	RolePrimary     Role = "primary"
	RoleSecondary   Role = "secondary"
	RoleAccent      Role = "accent"
	RoleBackground  Role = "background"
	RoleForeground  Role = "foreground"
	RoleBorder      Role = "border"
	RoleMuted       Role = "muted"
	RoleDestructive Role = "destructive"
	RoleNeutral     Role = "neutral"
)

// ColorAnalysis is the classifier output: one entry per distinct normalized
// color. Role is mutable during classification and final after assignment.
type ColorAnalysis struct {
	Hex             string   `json:"hex"`
	Role            Role     `json:"role"`
	Lightness       float64  `json:"lightness"`
	Saturation      float64  `json:"saturation"`
	Hue             float64  `json:"hue"`
	ContrastVsWhite float64  `json:"contrastVsWhite"`
	ContrastVsBlack float64  `json:"contrastVsBlack"`
	Frequency       int      `json:"frequency"`
	Sources         []string `json:"sources"`
	Confidence      float64  `json:"confidence"`

	score float64
}

// Score exposes the composite brand score for diagnostics and tests.
func (c ColorAnalysis) Score() float64 { return c.score }
