package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	partymetrics "opendisclosure/internal/party/metrics"
	"opendisclosure/internal/party/models"
	"opendisclosure/internal/party/store"
)

// Resolver turns a record's identifying fields into the canonical party row
// for that identity, creating one if absent. Repeated calls with the same
// lookup key return the same row and never create a duplicate.
type Resolver struct {
	parties store.Store
	log     zerolog.Logger
	metrics *partymetrics.Metrics
}

func NewResolver(parties store.Store, log zerolog.Logger, metrics *partymetrics.Metrics) *Resolver {
	return &Resolver{parties: parties, log: log, metrics: metrics}
}

// ResolveCommittee looks a committee up by its external identifier. The name
// only applies when the row is first created: names disagree across records
// for the same committee_id.
func (r *Resolver) ResolveCommittee(ctx context.Context, committeeID, name string) (*models.Party, error) {
	return r.resolve(ctx, &models.Party{
		Kind:        models.KindCommittee,
		CommitteeID: committeeID,
		Name:        name,
	})
}

// ResolveIndividual looks an individual up by full name plus address.
// Employer and occupation are creation-only attributes.
func (r *Resolver) ResolveIndividual(ctx context.Context, name models.NameParts, city, state, zip, employer, occupation string) (*models.Party, error) {
	return r.resolve(ctx, &models.Party{
		Kind:       models.KindIndividual,
		Name:       name.Full(),
		City:       city,
		State:      state,
		Zip:        zip,
		Employer:   employer,
		Occupation: occupation,
	})
}

// ResolveOther looks a non-committee, non-individual entity up by name alone.
// The address is a creation-only attribute: two records with the same name
// but different addresses are the same entity.
func (r *Resolver) ResolveOther(ctx context.Context, name, city, state, zip string) (*models.Party, error) {
	return r.resolve(ctx, &models.Party{
		Kind:  models.KindOther,
		Name:  name,
		City:  city,
		State: state,
		Zip:   zip,
	})
}

func (r *Resolver) resolve(ctx context.Context, p *models.Party) (*models.Party, error) {
	if p.Key().Blank() {
		// Tolerated: the degenerate row still resolves, but it is counted
		// and logged so feeds with missing identity fields are visible.
		r.metrics.IncrementMalformed()
		r.log.Warn().Str("kind", string(p.Kind)).Msg("resolving party with blank lookup key")
	}

	resolved, created, err := r.parties.FindOrCreate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("resolve %s party: %w", p.Kind, err)
	}
	if created {
		r.metrics.IncrementPartiesCreated(string(p.Kind))
		r.log.Debug().
			Str("kind", string(p.Kind)).
			Int64("party_id", resolved.ID).
			Str("name", resolved.Name).
			Msg("created party")
	}
	return resolved, nil
}
