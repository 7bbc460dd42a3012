package report

import (
	"fmt"
	"strings"
)

// Format selects how a report is rendered.
type Format string

const (
	// FormatText mirrors a human-readable console listing.
	FormatText Format = "text"
	// FormatJSON outputs the report as indented JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs the report as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json, yaml or yml, in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}
