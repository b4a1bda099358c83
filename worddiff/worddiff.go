// Package worddiff computes word-level differences between prose strings,
// used to highlight what an adaptation changed in a script block.
package worddiff

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rfandrade/roteiro"
)

// Compile-time interface verification.
var _ roteiro.WordDiffer = (*Differ)(nil)

// similarityThreshold is the minimum token-overlap ratio for word-level
// diffing. Below it the texts are treated as complete replacements.
const similarityThreshold = 0.3

// Differ tokenizes prose and computes word-level diffs.
type Differ struct{}

// NewDiffer creates a new Differ instance.
func NewDiffer() *Differ {
	return &Differ{}
}

// Tokenize splits prose into tokens: word runs (letters, digits, marks,
// in-word apostrophes and hyphens), whitespace runs, and single runes for
// everything else (punctuation, emoji). Safe for accented text.
func (d *Differ) Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	tokens := make([]string, 0, len(s)/4+1)
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		start := i

		switch {
		case isWordRune(r):
			i += size
			for i < len(s) {
				next, nextSize := utf8.DecodeRuneInString(s[i:])
				if !isWordRune(next) && !isJoiner(next, s[i+nextSize:]) {
					break
				}
				i += nextSize
			}
		case unicode.IsSpace(r):
			i += size
			for i < len(s) {
				next, nextSize := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsSpace(next) {
					break
				}
				i += nextSize
			}
		default:
			i += size
		}

		tokens = append(tokens, s[start:i])
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// isJoiner accepts an apostrophe or hyphen only when a word rune follows,
// so "público-alvo" and "d'água" stay single tokens but a trailing hyphen
// does not swallow the next word.
func isJoiner(r rune, rest string) bool {
	if r != '\'' && r != '’' && r != '-' {
		return false
	}
	next, _ := utf8.DecodeRuneInString(rest)
	return isWordRune(next)
}

// Diff returns spans for both the old and new strings, marking which
// portions changed between them.
func (d *Differ) Diff(old, new string) (oldSpans, newSpans []roteiro.Span) {
	if old == "" && new == "" {
		return nil, nil
	}
	if old == "" {
		return nil, []roteiro.Span{{Text: new, Changed: true}}
	}
	if new == "" {
		return []roteiro.Span{{Text: old, Changed: true}}, nil
	}
	if old == new {
		span := roteiro.Span{Text: old}
		return []roteiro.Span{span}, []roteiro.Span{span}
	}

	oldTokens := d.Tokenize(old)
	newTokens := d.Tokenize(new)

	if !similarEnough(oldTokens, newTokens) {
		return []roteiro.Span{{Text: old, Changed: true}},
			[]roteiro.Span{{Text: new, Changed: true}}
	}

	return lcsSpans(oldTokens, newTokens)
}

// similarEnough estimates token overlap; 2*common/(len(a)+len(b)) must
// reach the threshold for a word-level diff to be worth showing.
// Whitespace tokens are excluded: in prose they are common to any two
// strings and would make everything look similar.
func similarEnough(oldTokens, newTokens []string) bool {
	counts := make(map[string]int, len(oldTokens))
	oldWords, newWords := 0, 0
	for _, tok := range oldTokens {
		if !isSpaceToken(tok) {
			counts[tok]++
			oldWords++
		}
	}
	common := 0
	for _, tok := range newTokens {
		if isSpaceToken(tok) {
			continue
		}
		newWords++
		if counts[tok] > 0 {
			counts[tok]--
			common++
		}
	}

	total := oldWords + newWords
	if total == 0 {
		return false
	}
	return float64(2*common)/float64(total) >= similarityThreshold
}

func isSpaceToken(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return unicode.IsSpace(r)
}

// lcsSpans runs an O(n*m) LCS over the token sequences and emits merged
// changed/unchanged spans for both sides.
func lcsSpans(oldTokens, newTokens []string) (oldSpans, newSpans []roteiro.Span) {
	m, n := len(oldTokens), len(newTokens)
	stride := n + 1
	table := make([]int, (m+1)*stride)

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			switch {
			case oldTokens[i-1] == newTokens[j-1]:
				table[i*stride+j] = table[(i-1)*stride+j-1] + 1
			case table[(i-1)*stride+j] >= table[i*stride+j-1]:
				table[i*stride+j] = table[(i-1)*stride+j]
			default:
				table[i*stride+j] = table[i*stride+j-1]
			}
		}
	}

	if table[m*stride+n] == 0 {
		return []roteiro.Span{{Text: strings.Join(oldTokens, ""), Changed: true}},
			[]roteiro.Span{{Text: strings.Join(newTokens, ""), Changed: true}}
	}

	type match struct{ oldIdx, newIdx int }
	var matches []match
	for i, j := m, n; i > 0 && j > 0; {
		switch {
		case oldTokens[i-1] == newTokens[j-1]:
			matches = append(matches, match{i - 1, j - 1})
			i--
			j--
		case table[(i-1)*stride+j] >= table[i*stride+j-1]:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(matches)-1; l < r; l, r = l+1, r-1 {
		matches[l], matches[r] = matches[r], matches[l]
	}

	oldBuilder := spanBuilder{}
	newBuilder := spanBuilder{}
	oldIdx, newIdx := 0, 0
	for _, mt := range matches {
		for oldIdx < mt.oldIdx {
			oldBuilder.add(oldTokens[oldIdx], true)
			oldIdx++
		}
		for newIdx < mt.newIdx {
			newBuilder.add(newTokens[newIdx], true)
			newIdx++
		}
		oldBuilder.add(oldTokens[mt.oldIdx], false)
		newBuilder.add(newTokens[mt.newIdx], false)
		oldIdx = mt.oldIdx + 1
		newIdx = mt.newIdx + 1
	}
	for oldIdx < m {
		oldBuilder.add(oldTokens[oldIdx], true)
		oldIdx++
	}
	for newIdx < n {
		newBuilder.add(newTokens[newIdx], true)
		newIdx++
	}

	return oldBuilder.finish(), newBuilder.finish()
}

// spanBuilder accumulates tokens, merging adjacent same-status runs.
type spanBuilder struct {
	spans   []roteiro.Span
	text    strings.Builder
	changed bool
	open    bool
}

func (b *spanBuilder) add(token string, changed bool) {
	if b.open && b.changed != changed {
		b.flush()
	}
	b.text.WriteString(token)
	b.changed = changed
	b.open = true
}

func (b *spanBuilder) flush() {
	if b.open {
		b.spans = append(b.spans, roteiro.Span{Text: b.text.String(), Changed: b.changed})
		b.text.Reset()
		b.open = false
	}
}

func (b *spanBuilder) finish() []roteiro.Span {
	b.flush()
	return b.spans
}
