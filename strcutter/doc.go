// Package strcutter splits text into tokens on a set of delimiter characters.
//
// A StrCutter is a lazy, single-pass cursor over the source string. Runs of
// delimiters are treated as one separator, so no empty tokens are produced:
// leading and trailing delimiters are skipped and text made only of
// delimiters yields nothing.
//
//	c := strcutter.New("a b  c,d", ' ', ',')
//	for tok := range c.All() {
//	    fmt.Println(tok) // a, b, c, d
//	}
//
// Tokens are substrings of the source and share its memory; nothing is
// copied. Delimiters are matched as whole runes, so multi-byte delimiters
// such as '—' or '。' work and never split a character.
//
// Once a cutter is exhausted it stays exhausted. Create a new one to scan the
// same text again.
package strcutter
