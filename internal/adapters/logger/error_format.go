package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager matches zerr.Error, which reports its own message without the chain.
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens an error chain. Joined errors are walked in order.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	seen := make(map[string]struct{})

	var walk func(error)
	walk = func(current error) {
		for current != nil {
			if joined, ok := current.(interface{ Unwrap() []error }); ok {
				for _, child := range joined.Unwrap() {
					walk(child)
				}
				return
			}

			m, ok := current.(messager)
			if !ok {
				add(&entries, seen, ErrorEntry{Message: current.Error()})
				return
			}

			entry := ErrorEntry{Message: m.Message()}
			if md, ok := current.(metadataer); ok {
				entry.Metadata = md.Metadata()
			}
			add(&entries, seen, entry)
			current = errors.Unwrap(current)
		}
	}
	walk(err)

	return entries
}

// add drops entries whose message already appeared, as a sentinel joined with
// its own wrapped cause would otherwise print twice.
func add(entries *[]ErrorEntry, seen map[string]struct{}, entry ErrorEntry) {
	if _, dup := seen[entry.Message]; dup && len(entry.Metadata) == 0 {
		return
	}
	seen[entry.Message] = struct{}{}
	*entries = append(*entries, entry)
}

// formatErrorEntries renders the main error followed by an indented cause list.
func formatErrorEntries(entries []ErrorEntry) string {
	lines := make([]string, 0, len(entries)*2)

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")
		prefix, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			prefix, indent = "    → ", "      "
		}

		lines = append(lines, prefix+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
