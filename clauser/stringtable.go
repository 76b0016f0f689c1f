package clauser

import (
	"fmt"
	"hash/maphash"
)

// StringID identifies an interned string in a [ParseState]'s string
// table. Ids are stable across a parse and compare by equality.
type StringID int

// ParseState owns the immutable source text for a parse plus its string
// table. A ParseState is not safe for concurrent use: the string table
// grows as identifiers and string literals are interned.
type ParseState struct {
	source string

	seed    maphash.Seed
	byHash  map[uint64]StringID
	entries []string
}

// NewParseState creates a ParseState over the given source text. The
// source must outlive every [Token] and [StringID] produced from it.
func NewParseState(source string) *ParseState {
	return &ParseState{
		source: source,
		seed:   maphash.MakeSeed(),
		byHash: make(map[uint64]StringID),
	}
}

// Source returns the complete source text this state was built from.
func (p *ParseState) Source() string { return p.source }

func (p *ParseState) hashOf(s string) uint64 {
	var h maphash.Hash

	h.SetSeed(p.seed)
	_, _ = h.WriteString(s)

	return h.Sum64()
}

// AddString interns s, returning an existing [StringID] for byte-equal
// content already present in the table or inserting and returning a new
// one. s may be a view into the source text or a caller-owned string;
// either way it is stored as-is (see [ParseState.AddOwnedString] for the
// case where the caller's backing string is not already stable).
func (p *ParseState) AddString(s string) StringID {
	h := p.hashOf(s)
	if id, ok := p.byHash[h]; ok {
		return id
	}

	id := StringID(len(p.entries))
	p.entries = append(p.entries, s)
	p.byHash[h] = id

	return id
}

// AddOwnedString interns s the same way [ParseState.AddString] does. It
// exists as a distinct entry point for callers building strings that
// aren't views into the source text (e.g. assembled from several
// fragments), to make that distinction legible at call sites; both
// entry points dedupe through the same hash table, so the same content
// added through either one yields the same id.
func (p *ParseState) AddOwnedString(s string) StringID {
	return p.AddString(s)
}

// Lookup returns the interned string for id. Returns an error if id is
// out of range.
func (p *ParseState) Lookup(id StringID) (string, error) {
	if id < 0 || int(id) >= len(p.entries) {
		return "", fmt.Errorf("invalid string table id %d", id)
	}

	return p.entries[id], nil
}

// MustLookup is like [ParseState.Lookup] but panics on an invalid id.
// Intended for call sites that already hold an id they minted
// themselves and cannot be out of range barring an engine bug.
func (p *ParseState) MustLookup(id StringID) string {
	s, err := p.Lookup(id)
	if err != nil {
		panic(err)
	}

	return s
}
