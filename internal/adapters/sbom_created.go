package adapters

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// sbomCreatedLayouts are tried in order after the epoch form. Layouts without
// a zone are read as UTC.
var sbomCreatedLayouts = []string{
	time.RFC3339,
	time.DateTime,
	time.DateOnly,
}

// parseSBOMCreated reads the --sbom-created value. A blank value returns the
// zero time so the caller can stamp the document with the current time.
func parseSBOMCreated(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, nil
	}
	if seconds, err := strconv.ParseInt(strings.TrimPrefix(trimmed, "@"), 10, 64); err == nil {
		if seconds < 0 {
			return time.Time{}, invalidSBOMCreated(trimmed)
		}
		return time.Unix(seconds, 0).UTC(), nil
	}
	for _, layout := range sbomCreatedLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC().Truncate(time.Second), nil
		}
	}
	return time.Time{}, invalidSBOMCreated(trimmed)
}

func invalidSBOMCreated(value string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid sbom creation time %q: want RFC3339, YYYY-MM-DD hh:mm:ss, YYYY-MM-DD or epoch seconds", value))
}
