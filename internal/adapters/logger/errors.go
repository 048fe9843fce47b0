package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// zerrLayer is satisfied by *zerr.Error.
type zerrLayer interface {
	Message() string
	Metadata() map[string]any
}

// ErrorEntry is one layer of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain until it reaches an error that is not a
// zerr layer. Layers without a message only carry metadata and are folded into
// the entry that follows them.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var carried map[string]any

	for current := err; current != nil; {
		layer, ok := current.(zerrLayer)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: carried})
			break
		}

		meta := layer.Metadata()
		for k, v := range carried {
			meta[k] = v
		}
		carried = nil

		if layer.Message() == "" {
			carried = meta
			current = errors.Unwrap(current)
			continue
		}
		entries = append(entries, ErrorEntry{Message: layer.Message(), Metadata: meta})
		current = errors.Unwrap(current)
	}
	return entries
}

func formatErrorEntries(entries []ErrorEntry) string {
	lines := make([]string, 0, len(entries)*2)

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")
		first, indent := "    → ", "      "
		if i == 0 {
			first, indent = "Error: ", "       "
		}
		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}

		lines = append(lines, first+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}
	return strings.Join(lines, "\n")
}
