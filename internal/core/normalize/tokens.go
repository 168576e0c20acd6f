package normalize

import (
	"strings"
)

// Runs longer than keepRun collapse to squashTo: "freeeee" -> "free" while
// "www" and "xxx" stay intact
const (
	keepRun  = 3
	squashTo = 2
)

// Tokens splits normalized text into word tokens: runs of letters and digits
// with long character repeats squashed. Call it on Normalize output
func Tokens(normalized string) []string {
	fields := strings.FieldsFunc(normalized, func(r rune) bool { return !isAlnum(r) })
	out := fields[:0]
	for _, f := range fields {
		out = append(out, squashRuns(f))
	}
	return out
}

// Tokenize runs Normalize then Tokens
func (n *Normalizer) Tokenize(s string) []string { return Tokens(n.Normalize(s)) }

// HasURL reports whether the raw text carries a link, a strong spam signal in comments
func HasURL(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "http://") || strings.Contains(ls, "https://") || strings.Contains(ls, "www.")
}

func squashRuns(s string) string {
	rs := []rune(s)
	out := make([]rune, 0, len(rs))
	for i := 0; i < len(rs); {
		j := i
		for j < len(rs) && rs[j] == rs[i] {
			j++
		}
		n := j - i
		if n > keepRun {
			n = squashTo
		}
		for range n {
			out = append(out, rs[i])
		}
		i = j
	}
	return string(out)
}
