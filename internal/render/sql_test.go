package render

import (
	"strings"
	"testing"

	"github.com/eduardoconde-bit/spotify-database/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertRendersResolvedStatement(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	line, err := r.Insert(dataset.Genre{GenreID: 1, Name: "Jazz", Description: "Jazz music"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(line, "INSERT INTO"))
	assert.True(t, strings.HasSuffix(line, ";"))
	assert.Contains(t, line, "genres")
	assert.Contains(t, line, "Jazz")
	assert.NotContains(t, line, "?", "placeholders must be inlined")
}

func TestInsertEscapesQuotes(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	line, err := r.Insert(dataset.Genre{GenreID: 2, Name: "Drum 'n' Bass"})
	require.NoError(t, err)
	assert.Contains(t, line, "Drum ''n'' Bass")
}

func TestInsertUsesDeclaredTableName(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	line, err := r.Insert(dataset.Membership{UserID: 1, SubID: 1, Role: dataset.RoleOwner})
	require.NoError(t, err)
	assert.Contains(t, line, "member_subscription")
	assert.Contains(t, line, "owner")
}

func TestInsertOmitsTransientFields(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	sub := dataset.Subscription{SubID: 1, PlanID: 3, Status: dataset.SubscriptionStatusActive, OwnerID: 42, MemberIDs: []int{43, 44}}
	line, err := r.Insert(sub)
	require.NoError(t, err)

	assert.Contains(t, line, "recorrency")
	assert.NotContains(t, line, "owner_id")
	assert.NotContains(t, line, "member_ids")
}
