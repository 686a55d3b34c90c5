// Package report renders a scenario transcript for humans (text) or tools
// (yaml).
package report

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/marcodamonte/valuesemantics/internal/scenario"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Formats lists supported output formats.
func Formats() []string { return []string{FormatText, FormatYAML} }

// Write renders tr to w in the requested format.
func Write(w io.Writer, format string, tr *scenario.Transcript) error {
	switch format {
	case FormatText:
		return writeText(w, tr)
	case FormatYAML:
		return writeYAML(w, tr)
	}
	return fmt.Errorf("%w %q (supported: %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
}

// IsValid reports whether format is supported.
func IsValid(format string) bool { return slices.Contains(Formats(), format) }

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

func writeText(w io.Writer, tr *scenario.Transcript) error {
	var b strings.Builder

	section(&b, "Value semantics — copy, compare, reverse")
	for i, s := range tr.Steps {
		mark := "✅"
		if !s.OK() {
			mark = "❌"
		}
		fmt.Fprintf(&b, "  %s %d. %-32s want=%-5v got=%v\n", mark, i+1, s.Name, s.Want, s.Got)
		if len(s.Records) > 0 {
			fmt.Fprintf(&b, "       %s\n", strings.Join(s.Records, " "))
		}
		if !s.OK() && s.Diff != "" {
			for line := range strings.Lines(s.Diff) {
				fmt.Fprintf(&b, "       %s", line)
			}
		}
	}

	failed := len(tr.Failed())
	fmt.Fprintf(&b, "\n--- summary (%d/%d passed) ---\n", len(tr.Steps)-failed, len(tr.Steps))

	_, err := io.WriteString(w, b.String())
	return err
}

func writeYAML(w io.Writer, tr *scenario.Transcript) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tr); err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}
	return enc.Close()
}
