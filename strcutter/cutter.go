package strcutter

import (
	"iter"
	"slices"
	"unicode/utf8"
)

// StrCutter yields the delimiter-separated tokens of a string.
type StrCutter struct {
	rest   string
	delims []rune
}

// New creates a cutter over text that splits on any of delims.
// With no delimiters the whole text (if non-empty) is a single token.
func New(text string, delims ...rune) *StrCutter {
	return &StrCutter{
		rest:   text,
		delims: slices.Clone(delims),
	}
}

// Next returns the next token, or "" and false when the text is exhausted.
func (c *StrCutter) Next() (string, bool) {
	c.skipDelims()
	if c.rest == "" {
		return "", false
	}

	for i := 0; i < len(c.rest); {
		r, size := utf8.DecodeRuneInString(c.rest[i:])
		if c.isDelim(r) {
			tok := c.rest[:i]
			c.rest = c.rest[i+size:]
			return tok, true
		}
		i += size
	}

	tok := c.rest
	c.rest = ""
	return tok, true
}

// All yields the remaining tokens, consuming the cutter.
func (c *StrCutter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			tok, ok := c.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Rest returns the text that has not been consumed yet.
func (c *StrCutter) Rest() string {
	return c.rest
}

// Done reports whether the cutter has no tokens left.
func (c *StrCutter) Done() bool {
	c.skipDelims()
	return c.rest == ""
}

// skipDelims drops leading delimiters from the remaining text.
func (c *StrCutter) skipDelims() {
	for c.rest != "" {
		r, size := utf8.DecodeRuneInString(c.rest)
		if !c.isDelim(r) {
			return
		}
		c.rest = c.rest[size:]
	}
}

func (c *StrCutter) isDelim(r rune) bool {
	return slices.Contains(c.delims, r)
}

// Split returns every token of text as a slice.
func Split(text string, delims ...rune) []string {
	return slices.Collect(New(text, delims...).All())
}
