package version

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// AnyLabel is how an unbounded range renders.
const AnyLabel = "<any>"

// restriction is one bracketed interval. A nil bound is open.
type restriction struct {
	lower          *Version
	lowerInclusive bool
	upper          *Version
	upperInclusive bool
}

func (r restriction) contains(v Version) bool {
	if r.lower != nil {
		cmp := Compare(v, *r.lower)
		if cmp < 0 || (cmp == 0 && !r.lowerInclusive) {
			return false
		}
	}
	if r.upper != nil {
		cmp := Compare(v, *r.upper)
		if cmp > 0 || (cmp == 0 && !r.upperInclusive) {
			return false
		}
	}
	return true
}

// Range is a Maven-style version range: "[1.0,2.0)", "[1.0]", "(,1.0]",
// unions such as "[1,2),[3,4)", or a bare recommendation "1.0" which, like a
// blank spec, accepts any version.
type Range struct {
	raw          string
	restrictions []restriction
	recommended  string
}

// Unbounded returns the range used when a dependency declares no range.
func Unbounded() *Range {
	return &Range{}
}

// ParseRange parses a range spec. A blank spec is Unbounded.
func ParseRange(raw string) (*Range, error) {
	spec := strings.TrimSpace(raw)
	if spec == "" {
		return Unbounded(), nil
	}
	out := &Range{raw: spec}
	process := spec
	for strings.HasPrefix(process, "[") || strings.HasPrefix(process, "(") {
		end := closingIndex(process)
		if end < 0 {
			return nil, rangeError(spec, "unbounded range")
		}
		parsed, err := parseRestriction(spec, process[:end+1])
		if err != nil {
			return nil, err
		}
		if n := len(out.restrictions); n > 0 {
			prev := out.restrictions[n-1]
			if prev.upper != nil && (parsed.lower == nil || Compare(*parsed.lower, *prev.upper) < 0) {
				return nil, rangeError(spec, "ranges overlap")
			}
		}
		out.restrictions = append(out.restrictions, parsed)
		process = strings.TrimSpace(process[end+1:])
		if strings.HasPrefix(process, ",") {
			process = strings.TrimSpace(process[1:])
		}
	}
	if process != "" {
		if len(out.restrictions) > 0 {
			return nil, rangeError(spec, "only fully-qualified sets allowed in multiple set scenario")
		}
		out.recommended = process
	}
	return out, nil
}

func closingIndex(process string) int {
	paren := strings.Index(process, ")")
	bracket := strings.Index(process, "]")
	switch {
	case paren < 0:
		return bracket
	case bracket < 0:
		return paren
	case paren < bracket:
		return paren
	default:
		return bracket
	}
}

func parseRestriction(spec string, segment string) (restriction, error) {
	lowerInclusive := strings.HasPrefix(segment, "[")
	upperInclusive := strings.HasSuffix(segment, "]")
	body := strings.TrimSpace(segment[1 : len(segment)-1])

	comma := strings.Index(body, ",")
	if comma < 0 {
		if !lowerInclusive || !upperInclusive {
			return restriction{}, rangeError(spec, "single version must be surrounded by []")
		}
		bound, err := parseBound(spec, body)
		if err != nil {
			return restriction{}, err
		}
		return restriction{lower: bound, lowerInclusive: true, upper: bound, upperInclusive: true}, nil
	}

	lowerRaw := strings.TrimSpace(body[:comma])
	upperRaw := strings.TrimSpace(body[comma+1:])
	if strings.Contains(upperRaw, ",") {
		return restriction{}, rangeError(spec, "too many bounds")
	}
	if lowerRaw != "" && lowerRaw == upperRaw {
		return restriction{}, rangeError(spec, "range cannot have identical boundaries")
	}
	out := restriction{lowerInclusive: lowerInclusive, upperInclusive: upperInclusive}
	if lowerRaw != "" {
		bound, err := parseBound(spec, lowerRaw)
		if err != nil {
			return restriction{}, err
		}
		out.lower = bound
	}
	if upperRaw != "" {
		bound, err := parseBound(spec, upperRaw)
		if err != nil {
			return restriction{}, err
		}
		out.upper = bound
	}
	if out.lower != nil && out.upper != nil && Compare(*out.upper, *out.lower) < 0 {
		return restriction{}, rangeError(spec, "range defies version ordering")
	}
	return out, nil
}

func parseBound(spec string, raw string) (*Version, error) {
	if raw == "" {
		return nil, rangeError(spec, "empty version bound")
	}
	bound := Parse(raw)
	if !bound.Known() {
		return nil, rangeError(spec, fmt.Sprintf("unparseable version bound %q", raw))
	}
	return &bound, nil
}

func rangeError(spec string, reason string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid version range %q: %s", spec, reason))
}

// IsUnbounded reports whether the range accepts every known version.
func (r *Range) IsUnbounded() bool {
	return r != nil && len(r.restrictions) == 0
}

// Contains is false for a nil range and for Unknown or Invalid versions.
func (r *Range) Contains(v Version) bool {
	if r == nil || !v.Known() {
		return false
	}
	if len(r.restrictions) == 0 {
		return true
	}
	for _, res := range r.restrictions {
		if res.contains(v) {
			return true
		}
	}
	return false
}

// String renders the range for reports; a nil range renders as invalid.
func (r *Range) String() string {
	if r == nil {
		return InvalidLabel
	}
	if r.IsUnbounded() && r.recommended == "" {
		return AnyLabel
	}
	return r.raw
}
