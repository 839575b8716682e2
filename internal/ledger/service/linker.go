package service

import (
	"context"

	"github.com/rs/zerolog"

	ledgermetrics "opendisclosure/internal/ledger/metrics"
	"opendisclosure/internal/ledger/models"
	"opendisclosure/internal/ledger/store"
	partymodels "opendisclosure/internal/party/models"
	"opendisclosure/internal/socrata"
)

// PartyResolver is the slice of the party service the linker needs.
type PartyResolver interface {
	ResolveCommittee(ctx context.Context, committeeID, name string) (*partymodels.Party, error)
	ResolveIndividual(ctx context.Context, name partymodels.NameParts, city, state, zip, employer, occupation string) (*partymodels.Party, error)
	ResolveOther(ctx context.Context, name, city, state, zip string) (*partymodels.Party, error)
}

// counterpartyFields names the record keys holding the counterparty's
// identity for one record class. Schedule A uses tran_* keys, Schedule E
// payee_* keys; the resolution rule is the same for both.
type counterpartyFields struct {
	lastName  string
	firstName string
	title     string
	suffix    string
	city      string
	state     string
	zip       string

	// Only Schedule A carries these.
	employer   string
	occupation string
}

var (
	contributionCounterparty = counterpartyFields{
		lastName:   "tran_naml",
		firstName:  "tran_namf",
		title:      "tran_namt",
		suffix:     "tran_nams",
		city:       "tran_city",
		state:      "tran_state",
		zip:        "tran_zip4",
		employer:   "tran_emp",
		occupation: "tran_occ",
	}
	paymentCounterparty = counterpartyFields{
		lastName:  "payee_naml",
		firstName: "payee_namf",
		title:     "payee_namt",
		suffix:    "payee_nams",
		city:      "payee_city",
		state:     "payee_state",
		zip:       "payee_zip4",
	}
)

// Linker consumes one raw contribution or payment record, resolves its
// counterparties, and writes the transaction row linking them. Every call
// creates exactly one row; rows are never deduplicated.
type Linker struct {
	parties       PartyResolver
	contributions store.ContributionStore
	payments      store.PaymentStore
	log           zerolog.Logger
	metrics       *ledgermetrics.Metrics
}

func NewLinker(parties PartyResolver, contributions store.ContributionStore, payments store.PaymentStore, log zerolog.Logger, metrics *ledgermetrics.Metrics) *Linker {
	return &Linker{
		parties:       parties,
		contributions: contributions,
		payments:      payments,
		log:           log,
		metrics:       metrics,
	}
}

// LinkContribution handles one Schedule A record. The recipient is always
// the filing committee; the contributor is classified by entity code.
func (l *Linker) LinkContribution(ctx context.Context, rec socrata.Record) (*models.Contribution, error) {
	recipient, err := l.parties.ResolveCommittee(ctx, rec.Get("filer_id"), rec.Get("filer_naml"))
	if err != nil {
		return nil, err
	}
	contributor, err := l.resolveCounterparty(ctx, rec, contributionCounterparty)
	if err != nil {
		return nil, err
	}

	c := &models.Contribution{
		RecipientID:   recipient.ID,
		ContributorID: partyID(contributor),
		Amount:        rec.Float("tran_amt1"),
		Date:          rec.Date("tran_date"),
	}
	if err := l.contributions.Insert(ctx, c); err != nil {
		return nil, err
	}
	l.metrics.IncrementTransactionsLinked("contribution")
	return c, nil
}

// LinkPayment handles one Schedule E record. The payer is always the filing
// committee; the payee is classified by entity code.
func (l *Linker) LinkPayment(ctx context.Context, rec socrata.Record) (*models.Payment, error) {
	payer, err := l.parties.ResolveCommittee(ctx, rec.Get("filer_id"), rec.Get("filer_naml"))
	if err != nil {
		return nil, err
	}
	recipient, err := l.resolveCounterparty(ctx, rec, paymentCounterparty)
	if err != nil {
		return nil, err
	}

	p := &models.Payment{
		PayerID:     payer.ID,
		RecipientID: partyID(recipient),
		Amount:      rec.Float("amount"),
		Date:        rec.Date("expn_date"),
	}
	if err := l.payments.Insert(ctx, p); err != nil {
		return nil, err
	}
	l.metrics.IncrementTransactionsLinked("payment")
	return p, nil
}

// resolveCounterparty dispatches on the record's entity code. Unrecognized
// codes keep the filer-side row but leave the counterparty unset; skipping
// the record would silently drop the money flow.
func (l *Linker) resolveCounterparty(ctx context.Context, rec socrata.Record, f counterpartyFields) (*partymodels.Party, error) {
	switch models.ClassifyEntity(rec.Get("entity_cd")) {
	case models.EntityCommittee:
		// cmte_id matches filer_id for the same committee, though names
		// sometimes disagree between feeds.
		return l.parties.ResolveCommittee(ctx, rec.Get("cmte_id"), rec.Get(f.lastName))

	case models.EntityIndividual:
		name := partymodels.NameParts{
			Title:  rec.Get(f.title),
			First:  rec.Get(f.firstName),
			Last:   rec.Get(f.lastName),
			Suffix: rec.Get(f.suffix),
		}
		return l.parties.ResolveIndividual(ctx, name,
			rec.Get(f.city), rec.Get(f.state), rec.Get(f.zip),
			rec.Get(f.employer), rec.Get(f.occupation))

	case models.EntityOther:
		return l.parties.ResolveOther(ctx, rec.Get(f.lastName),
			rec.Get(f.city), rec.Get(f.state), rec.Get(f.zip))

	default:
		l.metrics.IncrementUnknownEntityCode()
		l.log.Warn().
			Str("entity_cd", rec.Get("entity_cd")).
			Str("filer_id", rec.Get("filer_id")).
			Msg("unrecognized entity code, leaving counterparty unset")
		return nil, nil
	}
}

func partyID(p *partymodels.Party) *int64 {
	if p == nil {
		return nil
	}
	id := p.ID
	return &id
}
