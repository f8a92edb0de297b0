// Package wordcount counts word occurrences in text and reports them.
//
// It ties the strcutter and hashtable packages together: text is split into
// words on a set of delimiter characters, and each word is looked up in a
// hash table and either inserted with a count of one or incremented in place.
//
// # Counter
//
//	counter := wordcount.NewCounter()
//	table := counter.Count("the cat and the hat")
//	n, _ := table.Get("the") // 2
//
// Custom delimiters and case folding:
//
//	counter := &wordcount.Counter{Delimiters: []rune{' ', ';'}, FoldCase: true}
//	table, err := counter.CountFile("notes.txt")
//
// # Reports
//
// WriteReport renders a table as "word: count" lines or as a YAML mapping.
// Entries appear in the table's bucket order, not sorted.
//
//	err := wordcount.WriteReport(os.Stdout, table, wordcount.FormatText)
//
// # Configuration
//
// Config can be loaded from YAML or TOML; the file extension selects the
// decoder. ConfigSchema returns the JSON schema for editors and validation.
//
//	cfg, err := wordcount.LoadConfig("wordcount.yaml")
//	counter := wordcount.NewCounterFromConfig(cfg)
//
// # Watching
//
// Watcher re-counts a file whenever it changes, using fsnotify with a
// polling fallback:
//
//	w := wordcount.NewWatcher("notes.txt", counter, func(t *wordcount.Table) {
//	    _ = wordcount.WriteReport(os.Stdout, t, wordcount.FormatText)
//	}, wordcount.WithLogger(logger))
//	err := w.Run(ctx)
package wordcount
