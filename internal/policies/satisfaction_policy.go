package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depextract/internal/types"
)

// ParseSeverity maps a descriptor "type" token to a Severity. Tokens are
// case-insensitive.
func ParseSeverity(token string) (types.Severity, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "required":
		return types.SeverityRequired, nil
	case "optional":
		return types.SeverityOptional, nil
	case "discouraged":
		return types.SeverityDiscouraged, nil
	case "incompatible":
		return types.SeverityIncompatible, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown dependency type: %s", token))
	}
}

// SeverityFromMandatory maps the legacy boolean flag.
func SeverityFromMandatory(mandatory bool) types.Severity {
	if mandatory {
		return types.SeverityRequired
	}
	return types.SeverityOptional
}

// IsSatisfied decides a dependency row from whether the target is installed
// and whether its version lies in the declared range.
func IsSatisfied(severity types.Severity, installed bool, inRange bool) bool {
	switch severity {
	case types.SeverityRequired:
		return installed && inRange
	case types.SeverityOptional:
		return !installed || inRange
	case types.SeverityDiscouraged, types.SeverityIncompatible:
		return !installed || !inRange
	default:
		return false
	}
}

// Retain applies a result filter to the rows of one identity. Placeholder
// rows count as satisfied. With both flags set nothing passes.
func Retain(filter types.ResultFilter, results []types.SatisfactionResult) bool {
	if filter.OnlySatisfied {
		for _, result := range results {
			if !result.Satisfied {
				return false
			}
		}
	}
	if filter.OnlyUnsatisfied {
		for _, result := range results {
			if !result.Placeholder && !result.Satisfied {
				return true
			}
		}
		return false
	}
	return true
}
