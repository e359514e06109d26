package semantic

import (
	"regexp"
	"strings"

	"github.com/gorilla/css/scanner"
)

// fragmentColors hunts the raw CSS text for rule blocks whose selector
// plausibly targets the given fragment (".hero", "#main", "button") and
// collects the colors declared inside. This is a heuristic substitute for a
// selector engine; tag/class/id substring semantics are all it promises.
func fragmentColors(cssText, fragment string) []string {
	if cssText == "" || fragment == "" {
		return nil
	}
	re, err := fragmentPattern(fragment)
	if err != nil {
		return nil
	}
	var out []string
	for _, m := range re.FindAllStringSubmatch(cssText, -1) {
		out = append(out, scanBlockColors(m[1])...)
	}
	return out
}

func fragmentPattern(fragment string) (*regexp.Regexp, error) {
	quoted := regexp.QuoteMeta(fragment)
	if strings.HasPrefix(fragment, ".") || strings.HasPrefix(fragment, "#") {
		return regexp.Compile(`(?s)` + quoted + `[\w-]*[^{}]*\{([^}]*)\}`)
	}
	// Bare tag: require a word boundary so "a" does not match "nav".
	return regexp.Compile(`(?s)(?:^|[\s,}])` + quoted + `\b[^{}]*\{([^}]*)\}`)
}

// scanBlockColors tokenizes a declaration block and returns the color
// literals in it. Hash tokens are hex colors; rgb/rgba/hsl/hsla function
// tokens are reassembled through the closing parenthesis.
func scanBlockColors(block string) []string {
	var out []string
	s := scanner.New(block)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF, scanner.TokenError:
			return out
		case scanner.TokenHash:
			if isHexColor(tok.Value) {
				out = append(out, tok.Value)
			}
		case scanner.TokenFunction:
			name := strings.ToLower(strings.TrimSuffix(tok.Value, "("))
			if name == "rgb" || name == "rgba" || name == "hsl" || name == "hsla" {
				if lit, ok := consumeFunction(s, tok.Value); ok {
					out = append(out, lit)
				}
			}
		}
	}
}

func consumeFunction(s *scanner.Scanner, head string) (string, bool) {
	var b strings.Builder
	b.WriteString(head)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF, scanner.TokenError:
			return "", false
		case scanner.TokenChar:
			b.WriteString(tok.Value)
			if tok.Value == ")" {
				return b.String(), true
			}
		default:
			b.WriteString(tok.Value)
		}
	}
}

var reHexDigits = regexp.MustCompile(`^#[0-9a-fA-F]{3}$|^#[0-9a-fA-F]{6}$|^#[0-9a-fA-F]{8}$`)

func isHexColor(v string) bool {
	return reHexDigits.MatchString(v)
}
