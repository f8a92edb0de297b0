// Package wordkit counts words in text with a hand-built hash table.
//
// wordkit is a small toolkit of independent packages:
//
//   - hashtable: generic hash table with separate chaining and load-factor growth
//   - strcutter: lazy tokenizer that splits text on a set of delimiter runes
//   - wordcount: word counting, reports, config loading, and file watching
//
// The wordcount command in cmd/wordcount wires them together.
//
// # Quick Start
//
// Hash table:
//
//	import "github.com/randalmurphal/wordkit/hashtable"
//	t := hashtable.New[string, int]()
//	t.Insert("potato", 1)
//	v, ok := t.Get("potato")
//
// Tokenizer:
//
//	import "github.com/randalmurphal/wordkit/strcutter"
//	for tok := range strcutter.New("a b, c", ' ', ',').All() {
//	    fmt.Println(tok)
//	}
//
// Word counting:
//
//	import "github.com/randalmurphal/wordkit/wordcount"
//	table := wordcount.Count("the cat and the hat")
//	_ = wordcount.WriteReport(os.Stdout, table, wordcount.FormatText)
//
// # Design Philosophy
//
//   - hashtable and strcutter have no dependencies on each other
//   - Absence is reported with a second boolean result, never an error
//   - Containers are single-threaded; callers add locking if they share them
package wordkit
