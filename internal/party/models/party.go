package models

import "strings"

// Kind discriminates the party variants. Each variant has its own lookup key.
type Kind string

const (
	KindCommittee  Kind = "committee"
	KindIndividual Kind = "individual"
	KindOther      Kind = "other"
)

// Party is one resolved, deduplicated actor in the finance data.
//
// Invariants:
//   - Within a kind, the lookup key (see Key) identifies at most one row
//   - Creation-only attributes (Employer, Occupation, and for the Other kind
//     the address fields) never participate in lookups and are frozen at
//     first creation
//   - Rows are never updated or deleted after creation
type Party struct {
	ID   int64
	Kind Kind

	// CommitteeID is the external filer/committee identifier. It can be
	// blank on some records; no validation is applied.
	CommitteeID string

	Name  string
	City  string
	State string
	Zip   string

	// Individuals only, captured when the row is first created.
	Employer   string
	Occupation string
}

// LookupKey is the identity tuple used for exact-match resolution.
type LookupKey struct {
	Kind        Kind
	CommitteeID string
	Name        string
	City        string
	State       string
	Zip         string
}

// Key returns the variant's identity tuple. Non-key attributes are zeroed so
// records that differ only in creation-time fields resolve to the same party.
func (p *Party) Key() LookupKey {
	switch p.Kind {
	case KindCommittee:
		return LookupKey{Kind: p.Kind, CommitteeID: p.CommitteeID}
	case KindIndividual:
		return LookupKey{Kind: p.Kind, Name: p.Name, City: p.City, State: p.State, Zip: p.Zip}
	default:
		return LookupKey{Kind: p.Kind, Name: p.Name}
	}
}

// Blank reports whether every field of the lookup key is empty. Such keys
// still resolve to a (degenerate) party; callers count them as malformed.
func (k LookupKey) Blank() bool {
	return k == LookupKey{Kind: k.Kind}
}

// NameParts holds the four name fields a disclosure record splits an
// individual's name into.
type NameParts struct {
	Title  string
	First  string
	Last   string
	Suffix string
}

// Full joins the parts in (title, first, last, suffix) order with single
// spaces and trims the ends. Interior whitespace is kept as-is, so blank
// middle parts leave double spaces.
func (n NameParts) Full() string {
	return strings.TrimSpace(strings.Join([]string{n.Title, n.First, n.Last, n.Suffix}, " "))
}
