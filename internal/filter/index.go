// Package filter keeps the search query typed into the menu and the flat
// list of nodes it matches.
package filter

import (
	"strings"
	"unicode"

	"github.com/atomicstack/debugmenu/internal/entry"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Index holds the query, its rune cursor and the matches from the last
// Recompute. Edits only mark the index dirty; matches are rebuilt on the
// next Recompute.
type Index struct {
	query   string
	cursor  int
	dirty   bool
	results []*entry.Node
	applied string
}

// New returns an empty index.
func New() *Index {
	return &Index{}
}

// Query returns the raw query text.
func (x *Index) Query() string {
	if x == nil {
		return ""
	}
	return x.query
}

// Cursor returns the rune offset of the caret.
func (x *Index) Cursor() int {
	if x == nil {
		return 0
	}
	runes := len([]rune(x.query))
	if x.cursor < 0 {
		return 0
	}
	if x.cursor > runes {
		return runes
	}
	return x.cursor
}

// Dirty reports whether the query changed since the last Recompute.
func (x *Index) Dirty() bool {
	return x != nil && x.dirty
}

// Applied returns the query the current results were computed for.
func (x *Index) Applied() string {
	if x == nil {
		return ""
	}
	return x.applied
}

// Invalidate marks the matches stale when the tree changed under a live
// query.
func (x *Index) Invalidate() {
	if x == nil || x.query == "" {
		return
	}
	x.dirty = true
}

// SetQuery replaces the query and places the caret at cursor.
func (x *Index) SetQuery(query string, cursor int) {
	if x == nil {
		return
	}
	if query != x.query {
		x.dirty = true
	}
	x.query = query
	runes := len([]rune(query))
	if cursor < 0 {
		cursor = 0
	}
	if cursor > runes {
		cursor = runes
	}
	x.cursor = cursor
}

// Insert types text at the caret.
func (x *Index) Insert(text string) bool {
	if x == nil || text == "" {
		return false
	}
	insert := []rune(text)
	runes := []rune(x.query)
	pos := x.Cursor()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	x.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteBackward removes the rune before the caret.
func (x *Index) DeleteBackward() bool {
	if x == nil {
		return false
	}
	runes := []rune(x.query)
	pos := x.Cursor()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	x.SetQuery(string(updated), pos-1)
	return true
}

// DeleteWordBackward removes the word before the caret along with any
// whitespace between the word and the caret.
func (x *Index) DeleteWordBackward() bool {
	if x == nil {
		return false
	}
	runes := []rune(x.query)
	pos := x.Cursor()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	x.SetQuery(string(updated), i)
	return true
}

// Clear empties the query.
func (x *Index) Clear() bool {
	if x == nil || x.query == "" {
		return false
	}
	x.SetQuery("", 0)
	return true
}

// MoveStart puts the caret before the first rune.
func (x *Index) MoveStart() bool {
	if x == nil || x.Cursor() == 0 {
		return false
	}
	x.cursor = 0
	return true
}

// MoveEnd puts the caret after the last rune.
func (x *Index) MoveEnd() bool {
	if x == nil {
		return false
	}
	end := len([]rune(x.query))
	if x.Cursor() == end {
		return false
	}
	x.cursor = end
	return true
}

// MoveRuneBackward moves the caret one rune left.
func (x *Index) MoveRuneBackward() bool {
	if x == nil || x.Cursor() == 0 {
		return false
	}
	x.cursor = x.Cursor() - 1
	return true
}

// MoveRuneForward moves the caret one rune right.
func (x *Index) MoveRuneForward() bool {
	if x == nil {
		return false
	}
	pos := x.Cursor()
	if pos >= len([]rune(x.query)) {
		return false
	}
	x.cursor = pos + 1
	return true
}

// MoveWordBackward moves the caret to the start of the previous word.
func (x *Index) MoveWordBackward() bool {
	if x == nil {
		return false
	}
	pos := x.Cursor()
	i := wordStart([]rune(x.query), pos)
	if i == pos {
		return false
	}
	x.cursor = i
	return true
}

// MoveWordForward moves the caret past the next word.
func (x *Index) MoveWordForward() bool {
	if x == nil {
		return false
	}
	runes := []rune(x.query)
	pos := x.Cursor()
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	x.cursor = i
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// Recompute rebuilds the matches from root when the query changed. An empty
// query clears them. It reports whether anything was recomputed.
func (x *Index) Recompute(root *entry.Node) bool {
	if x == nil || !x.dirty {
		return false
	}
	x.dirty = false
	x.applied = x.query
	if x.query == "" {
		x.results = nil
		return true
	}
	x.results = root.CollectMatches(entry.Lower(x.query), nil)
	return true
}

// Results returns the matches in tree pre-order. No matches and no query
// both yield an empty slice.
func (x *Index) Results() []*entry.Node {
	if x == nil {
		return nil
	}
	return x.results
}

// Active reports whether there are matches to show instead of the current
// directory.
func (x *Index) Active() bool {
	return x != nil && len(x.results) > 0
}

// Best returns the position in Results of the strongest match: an exact
// name first, then a prefix, then the closest fuzzy rank, which prefers the
// shortest name. It returns -1 when there are no results.
func (x *Index) Best() int {
	if !x.Active() {
		return -1
	}
	query := entry.Lower(x.applied)
	for i, n := range x.results {
		if n.Key() == query {
			return i
		}
	}
	for i, n := range x.results {
		if strings.HasPrefix(n.Key(), query) {
			return i
		}
	}
	labels := make([]string, len(x.results))
	for i, n := range x.results {
		labels[i] = n.Name()
	}
	ranks := fuzzy.RankFindNormalizedFold(x.applied, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(x.results) {
		return 0
	}
	return best.OriginalIndex
}
