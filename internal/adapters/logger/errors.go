package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/jyotish/internal/core/domain"
)

// messager matches zerr errors, which report their own message without the chain.
type messager interface {
	Message() string
}

type metadataCarrier interface {
	Metadata() map[string]any
}

// errorEntry is one layer of an error chain.
type errorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens err into one entry per layer, outermost first.
// Standard library errors terminate the walk. A validation error expands into
// one entry per blocking issue.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry

	for current := err; current != nil; {
		if verr, ok := current.(*domain.ValidationError); ok {
			entries = append(entries, errorEntry{Message: domain.ErrValidationFailed.Error()})
			for _, issue := range verr.Result.Errors {
				entries = append(entries, errorEntry{
					Message:  issue.Message,
					Metadata: map[string]any{"field": issue.Field, "code": string(issue.Code)},
				})
			}
			break
		}

		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{Message: current.Error()})
			break
		}

		entry := errorEntry{Message: m.Message()}
		if mc, ok := current.(metadataCarrier); ok {
			entry.Metadata = mc.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as a headline followed by an indented
// "Caused by" list. Metadata keys are sorted.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		indent := "      "
		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			indent = "       "
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lines = append(lines, "    → "+msgLines[0])
		}

		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
