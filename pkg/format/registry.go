// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package format

import "slices"

// Registry holds an ordered list of detection rules.
//
// Rules carrying fixed leading signatures are additionally indexed by a
// prefix table, so that a detection call only evaluates the rules whose
// magic actually occurs at the start of the source. Candidate rules are
// always evaluated in registration order, which encodes priority.
//
// A Registry is immutable after construction and safe for concurrent use.
type Registry struct {
	rules []Rule
	index *sigIndex
	loose []int // positions of rules with no leading signature
}

// NewRegistry builds a registry from the given rules, preserving their order.
func NewRegistry(rules ...Rule) *Registry {
	r := &Registry{
		rules: rules,
		index: newSigIndex(),
	}

	for i, rule := range rules {
		if len(rule.Signatures) == 0 {
			r.loose = append(r.loose, i)
			continue
		}

		for _, sig := range rule.Signatures {
			r.index.insert(sig, i)
		}
	}
	return r
}

// Rules returns the registered rules in priority order.
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Signatures returns the total number of indexed magic byte sequences.
func (r *Registry) Signatures() int {
	return r.index.size()
}

// candidates returns the positions of the rules worth evaluating against a
// source starting with the given prefix: every signature-less rule, plus the
// signature rules whose magic matches. Positions are sorted, so iterating
// them preserves rule priority.
func (r *Registry) candidates(prefix []byte) []int {
	cands := slices.Clone(r.loose)

	r.index.walk(prefix, func(positions []int) {
		cands = append(cands, positions...)
	})

	slices.Sort(cands)
	return slices.Compact(cands)
}

const sigIndexSize = 1 << 16

const (
	// none indicates that no signature prefix hashes to this slot.
	none = iota
	// presentMarker indicates that some signature passes through this
	// slot, but no signature ends here.
	presentMarker
	// elemMarker indicates that a complete signature hashes to this slot.
	elemMarker
)

// sigIndex maps magic byte sequences to rule positions.
//
// It hashes every prefix of an inserted signature into a fixed 2^16-slot
// table (h = h<<2 + b per byte), which allows a lookup to bail out as soon
// as the leading bytes of a source cannot extend into any known signature.
// Exact matches are confirmed against a map, so hash collisions only cost
// a map probe, never a false candidate.
type sigIndex struct {
	table [sigIndexSize]byte
	elems map[string][]int
}

func newSigIndex() *sigIndex {
	return &sigIndex{
		elems: make(map[string][]int),
	}
}

func (t *sigIndex) insert(sig []byte, pos int) {
	var h uint16 = 0
	for _, b := range sig {
		h = (h << 2) + uint16(b)
		// max() preserves an elemMarker set by a shorter signature.
		t.table[h] = max(t.table[h], presentMarker)
	}
	t.table[h] = elemMarker
	t.elems[string(sig)] = append(t.elems[string(sig)], pos)
}

// walk calls onMatch for every registered signature which is a prefix of data.
// The traversal stops as soon as the current prefix of data cannot extend
// into any known signature.
func (t *sigIndex) walk(data []byte, onMatch func(positions []int)) {
	var h uint16 = 0
	for i, b := range data {
		h = (h << 2) + uint16(b)

		marker := t.table[h]
		if marker == none {
			return
		}

		if marker == elemMarker {
			if positions, ok := t.elems[string(data[:i+1])]; ok {
				onMatch(positions)
			}
		}
	}
}

func (t *sigIndex) size() int {
	return len(t.elems)
}
