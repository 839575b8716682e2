package models

import "time"

// Field names one roll-up column of a summary row. Values come only from
// SummaryLines, which keeps the column set closed.
type Field string

const (
	FieldTotalMonetaryContributions   Field = "total_monetary_contributions"
	FieldTotalContributionsReceived   Field = "total_contributions_received"
	FieldTotalExpendituresMade        Field = "total_expenditures_made"
	FieldEndingCashBalance            Field = "ending_cash_balance"
	FieldTotalUnitemizedContributions Field = "total_unitemized_contributions"
)

// SummaryLines maps form type -> line item -> the roll-up field that line
// populates. Lines outside this map are dropped silently.
var SummaryLines = map[string]map[string]Field{
	"F460": {
		"1":  FieldTotalMonetaryContributions,
		"5":  FieldTotalContributionsReceived,
		"11": FieldTotalExpendituresMade,
		"16": FieldEndingCashBalance,
	},
	"A": {
		"2": FieldTotalUnitemizedContributions,
	},
}

// Summary is one roll-up row per (filer, reporting date). Fields are sparse:
// each is populated only once a matching summary line has been seen, and a
// recurring line overwrites the prior value (reports supersede, they do not
// accumulate).
type Summary struct {
	ID      int64
	FilerID string
	Date    time.Time

	TotalMonetaryContributions   *float64
	TotalContributionsReceived   *float64
	TotalExpendituresMade        *float64
	EndingCashBalance            *float64
	TotalUnitemizedContributions *float64
}

// Set writes one field, last write wins.
func (s *Summary) Set(field Field, amount float64) {
	v := amount
	switch field {
	case FieldTotalMonetaryContributions:
		s.TotalMonetaryContributions = &v
	case FieldTotalContributionsReceived:
		s.TotalContributionsReceived = &v
	case FieldTotalExpendituresMade:
		s.TotalExpendituresMade = &v
	case FieldEndingCashBalance:
		s.EndingCashBalance = &v
	case FieldTotalUnitemizedContributions:
		s.TotalUnitemizedContributions = &v
	}
}

// Get returns the current value of one field, nil when unset.
func (s *Summary) Get(field Field) *float64 {
	switch field {
	case FieldTotalMonetaryContributions:
		return s.TotalMonetaryContributions
	case FieldTotalContributionsReceived:
		return s.TotalContributionsReceived
	case FieldTotalExpendituresMade:
		return s.TotalExpendituresMade
	case FieldEndingCashBalance:
		return s.EndingCashBalance
	case FieldTotalUnitemizedContributions:
		return s.TotalUnitemizedContributions
	}
	return nil
}
