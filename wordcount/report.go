package wordcount

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Format selects how a report is rendered.
type Format string

const (
	// FormatText writes one "word: count" line per entry (default).
	FormatText Format = "text"

	// FormatYAML writes a YAML mapping of word to count.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a name to a Format. An empty name means FormatText.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// WriteReport writes every entry of t to w in the table's own order.
// Entries are not sorted.
func WriteReport(w io.Writer, t *Table, format Format) error {
	switch format {
	case "", FormatText:
		return writeText(w, t)
	case FormatYAML:
		return writeYAML(w, t)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	for word, n := range t.All() {
		if _, err := fmt.Fprintf(bw, "%s: %d\n", word, n); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// writeYAML builds the mapping node by hand; encoding a Go map would sort
// the keys.
func writeYAML(w io.Writer, t *Table) error {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if t.IsEmpty() {
		doc.Style = yaml.FlowStyle
	}
	for word, n := range t.All() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: word}
		if !utf8.ValidString(word) {
			// Untagged invalid UTF-8 is emitted as base64 !!binary, which
			// decodes back to the same bytes.
			key.Tag = ""
		}
		doc.Content = append(doc.Content,
			key,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(n)},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
