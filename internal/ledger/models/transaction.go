package models

import "time"

// EntityClass is the counterparty classification drawn from a record's
// entity code. Unknown stays an explicit case so callers decide what an
// unclassified counterparty means instead of letting it fall through.
type EntityClass string

const (
	EntityCommittee  EntityClass = "committee"
	EntityIndividual EntityClass = "individual"
	EntityOther      EntityClass = "other"
	EntityUnknown    EntityClass = "unknown"
)

// ClassifyEntity maps a disclosure entity code to a counterparty class.
// COM and SCC are both committee codes; everything outside the three
// recognized families, including blank, is Unknown.
func ClassifyEntity(code string) EntityClass {
	switch code {
	case "COM", "SCC":
		return EntityCommittee
	case "IND":
		return EntityIndividual
	case "OTH":
		return EntityOther
	default:
		return EntityUnknown
	}
}

// Contribution records money flowing to a committee. Rows are append-only
// and are not deduplicated across runs: re-ingesting the same feed window
// duplicates them. That is a documented limitation of the source data, not
// something the loader corrects.
type Contribution struct {
	ID          int64
	RecipientID int64

	// ContributorID is nil when the record's entity code was unrecognized.
	ContributorID *int64

	Amount float64
	Date   *time.Time
}

// Payment records money flowing from a committee.
type Payment struct {
	ID      int64
	PayerID int64

	// RecipientID is nil when the record's entity code was unrecognized.
	RecipientID *int64

	Amount float64
	Date   *time.Time
}
