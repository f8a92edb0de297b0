package wordcount

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/randalmurphal/wordkit/hashtable"
	"github.com/randalmurphal/wordkit/strcutter"
)

// DefaultDelimiters separates words in running English text.
var DefaultDelimiters = []rune{'.', ' ', ',', '!', '?', '\t', '\n', '\r'}

// Table maps each word to the number of times it occurs.
type Table = hashtable.HashTable[string, int]

// Counter tallies word occurrences in text.
type Counter struct {
	// Delimiters are the characters that separate words.
	// Empty means DefaultDelimiters.
	Delimiters []rune

	// FoldCase lowercases words before counting, so "The" and "the" share
	// one entry.
	FoldCase bool
}

// NewCounter creates a counter that splits on DefaultDelimiters.
func NewCounter() *Counter {
	return &Counter{
		Delimiters: slices.Clone(DefaultDelimiters),
	}
}

// NewCounterFromConfig creates a counter from a loaded Config.
func NewCounterFromConfig(cfg *Config) *Counter {
	c := NewCounter()
	if cfg.Delimiters != "" {
		c.Delimiters = []rune(cfg.Delimiters)
	}
	c.FoldCase = cfg.FoldCase
	return c
}

// Count splits text into words and returns how often each occurs.
// Words are keyed with StringHasher so the table layout, and therefore the
// report order, is the same from run to run.
func (c *Counter) Count(text string) *Table {
	delims := c.Delimiters
	if len(delims) == 0 {
		delims = DefaultDelimiters
	}

	table := hashtable.NewWithHasher[string, int](hashtable.StringHasher{})
	for word := range strcutter.New(text, delims...).All() {
		if c.FoldCase {
			word = strings.ToLower(word)
		}
		if n, ok := table.Lookup(word); ok {
			*n++
		} else {
			table.Insert(word, 1)
		}
	}
	return table
}

// CountReader reads r to the end and counts its words.
func (c *Counter) CountReader(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &Error{Op: "read", Err: err}
	}
	return c.Count(string(data)), nil
}

// CountFile reads the file at path and counts its words.
// A missing file yields an error matching ErrInputNotFound.
func (c *Counter) CountFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Op: "read", Path: path, Err: fmt.Errorf("%w: %w", ErrInputNotFound, err)}
		}
		return nil, &Error{Op: "read", Path: path, Err: err}
	}
	return c.Count(string(data)), nil
}

// Count is a convenience function using the default counter.
func Count(text string) *Table {
	return NewCounter().Count(text)
}
