// Package shared provides common utility functions used across multiple
// packages in the depextract codebase.
package shared

import (
	"strings"
)

// LibraryID derives a mod id from a library name: lower-cased, spaces
// replaced with underscores and a trailing ".jar" removed.
func LibraryID(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	lower = strings.ReplaceAll(lower, " ", "_")
	return strings.TrimSuffix(lower, ".jar")
}

// ServiceClassEntry turns the first class named in a service file into the
// archive entry holding its bytecode. Comments and blank lines are skipped.
func ServiceClassEntry(serviceFile []byte) (string, bool) {
	for _, line := range strings.Split(string(serviceFile), "\n") {
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return strings.ReplaceAll(line, ".", "/") + ".class", true
	}
	return "", false
}
