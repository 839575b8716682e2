package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamePartsFull(t *testing.T) {
	t.Run("all parts present", func(t *testing.T) {
		n := NameParts{Title: "Dr.", First: "Jane", Last: "Doe", Suffix: "Jr."}
		assert.Equal(t, "Dr. Jane Doe Jr.", n.Full())
	})

	t.Run("trailing blank part is trimmed", func(t *testing.T) {
		n := NameParts{Title: "Dr.", First: "Jane", Last: "Doe"}
		assert.Equal(t, "Dr. Jane Doe", n.Full())
	})

	t.Run("blank middle part leaves a double space", func(t *testing.T) {
		n := NameParts{Title: "Dr.", Last: "Doe"}
		assert.Equal(t, "Dr.  Doe", n.Full())
	})

	t.Run("all blank parts yield empty name", func(t *testing.T) {
		assert.Equal(t, "", NameParts{}.Full())
	})
}

func TestPartyKey(t *testing.T) {
	t.Run("committee keys on committee_id only", func(t *testing.T) {
		a := Party{Kind: KindCommittee, CommitteeID: "1229791", Name: "Committee A"}
		b := Party{Kind: KindCommittee, CommitteeID: "1229791", Name: "Committee A (old name)"}
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("individual keys on name and address", func(t *testing.T) {
		a := Party{Kind: KindIndividual, Name: "Jane Doe", City: "Oakland", State: "CA", Zip: "94612", Employer: "Acme"}
		b := Party{Kind: KindIndividual, Name: "Jane Doe", City: "Oakland", State: "CA", Zip: "94612", Employer: "Globex", Occupation: "Engineer"}
		assert.Equal(t, a.Key(), b.Key())

		moved := Party{Kind: KindIndividual, Name: "Jane Doe", City: "Berkeley", State: "CA", Zip: "94702"}
		assert.NotEqual(t, a.Key(), moved.Key())
	})

	t.Run("other keys on name alone", func(t *testing.T) {
		a := Party{Kind: KindOther, Name: "Acme LLC", City: "Oakland"}
		b := Party{Kind: KindOther, Name: "Acme LLC", City: "San Jose", Zip: "95113"}
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("kinds never collide", func(t *testing.T) {
		ind := Party{Kind: KindIndividual, Name: "Acme LLC"}
		oth := Party{Kind: KindOther, Name: "Acme LLC"}
		assert.NotEqual(t, ind.Key(), oth.Key())
	})
}

func TestLookupKeyBlank(t *testing.T) {
	assert.True(t, (&Party{Kind: KindCommittee}).Key().Blank())
	assert.True(t, (&Party{Kind: KindOther, City: "Oakland"}).Key().Blank())
	assert.False(t, (&Party{Kind: KindCommittee, CommitteeID: "7"}).Key().Blank())
	assert.False(t, (&Party{Kind: KindIndividual, Zip: "94612"}).Key().Blank())
}
