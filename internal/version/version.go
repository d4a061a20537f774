// Package version models mod versions and Maven-style version ranges.
//
// Versions are ordered like Maven's ComparableVersion, using
// github.com/masahiro331/go-mvn-version: every dot or dash separated
// component counts, "1.0" equals "1.0.0", and qualifiers such as "-beta" sort
// below the release while numeric suffixes such as "-47.1.3" sort above it.
// Strings that do not start with a digit become the Unknown sentinel, which
// sorts below every real version and is never contained by a range.
package version

import (
	"regexp"
	"strings"

	mvn "github.com/masahiro331/go-mvn-version"
)

// InvalidLabel is how an Invalid version renders.
const InvalidLabel = "<invalid>"

type state uint8

const (
	stateUnknown state = iota
	stateKnown
	stateInvalid
)

// Version is a parsed mod version. The zero value is Unknown.
type Version struct {
	raw   string
	mv    mvn.Version
	state state
}

var numericStart = regexp.MustCompile(`^[vV]?\d`)

// Parse never fails: unparseable input yields an Unknown version that keeps
// the original string for display.
func Parse(raw string) Version {
	trimmed := strings.TrimSpace(raw)
	if !numericStart.MatchString(trimmed) {
		return Version{raw: trimmed, state: stateUnknown}
	}
	parsed, err := mvn.NewVersion(strings.TrimLeft(trimmed, "vV"))
	if err != nil {
		return Version{raw: trimmed, state: stateUnknown}
	}
	return Version{raw: trimmed, mv: parsed, state: stateKnown}
}

// Unknown returns the sentinel used when no version is declared.
func Unknown(label string) Version {
	return Version{raw: label, state: stateUnknown}
}

// Invalid returns the sentinel used when a declared version could not be
// resolved, e.g. a placeholder whose substitution source is missing.
func Invalid() Version {
	return Version{raw: InvalidLabel, state: stateInvalid}
}

func (v Version) Known() bool {
	return v.state == stateKnown
}

func (v Version) IsInvalid() bool {
	return v.state == stateInvalid
}

func (v Version) String() string {
	if v.state == stateInvalid {
		return InvalidLabel
	}
	return v.raw
}

// Compare returns -1, 0 or 1. Unknown and Invalid versions sort below every
// known version and compare equal to each other.
func Compare(a Version, b Version) int {
	switch {
	case !a.Known() && !b.Known():
		return 0
	case !a.Known():
		return -1
	case !b.Known():
		return 1
	}
	switch cmp := a.mv.Compare(b.mv); {
	case cmp < 0:
		return -1
	case cmp > 0:
		return 1
	default:
		return 0
	}
}
