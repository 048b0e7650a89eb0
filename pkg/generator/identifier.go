package generator

import (
	"regexp"
	"strings"

	"github.com/sqlmorph/sqlmorph/pkg/token"
)

var safeIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// needsQuoting reports whether name must be quoted to round-trip safely:
// it collides with a reserved keyword, doesn't match the safe identifier
// shape, or starts with a digit.
func needsQuoting(name string) bool {
	if !safeIdentifier.MatchString(name) {
		return true
	}
	if _, isKeyword := token.Keywords[strings.ToUpper(name)]; isKeyword {
		return true
	}
	return false
}

// DefaultIdentifierFormatter quotes with double quotes (ANSI) only when
// the identifier was explicitly quoted at parse time or isn't safe bare.
// Dialects with a different quoting style override this via
// WithIdentifierFormatter.
func DefaultIdentifierFormatter(name string, quoted bool) string {
	if quoted || needsQuoting(name) {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return name
}
