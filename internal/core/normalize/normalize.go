// Package normalize provides the deterministic text normalizer and tokenizer used by the classifier
// Pipeline order
// 1 Sanitize control characters and drop invalid UTF-8
// 2 Decompose and remove combining marks, then NFKC
// 3 Case folding
// 4 Remove zero-width format characters
// 5 Width fold fullwidth to ASCII
// 6 Leet folding inside words that contain a letter eg 4/@->a 0->o 1/!->i 3->e 5/$->s 7->t
// 7 Collapse whitespace to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFD,                           // split precomposed letters from their marks
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			norm.NFKC,
			cases.Fold(), // unicode case folding, may emit marks again (U+0130)
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
			norm.NFC,
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the normalized form of s following the pipeline described above
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	words := strings.Fields(ns)
	for i, w := range words {
		words[i] = leetFold(w)
	}
	return strings.Join(words, " ")
}

var leet = map[rune]rune{
	'4': 'a', '@': 'a',
	'0': 'o',
	'1': 'i', '!': 'i',
	'3': 'e',
	'5': 's', '$': 's',
	'7': 't',
}

// leetFold maps lookalikes to letters inside the alphanumeric core of one word.
// Words without any letter are returned unchanged so numbers and prices survive,
// and edge punctuation stays punctuation ("now!" keeps its bang)
func leetFold(word string) string {
	rs := []rune(word)
	lo, hi := 0, len(rs)
	for lo < hi && !isAlnum(rs[lo]) {
		lo++
	}
	for hi > lo && !isAlnum(rs[hi-1]) {
		hi--
	}
	core := rs[lo:hi]
	if !hasLetter(core) {
		return word
	}
	for i, r := range core {
		if m, ok := leet[r]; ok {
			core[i] = m
		}
	}
	return string(rs)
}

func isAlnum(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

func hasLetter(rs []rune) bool {
	for _, r := range rs {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
