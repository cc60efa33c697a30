// infrastructure/persistence/postgres/relationship_repository_test.go
package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pairchat/gofiber-dm-api/domain/models"
	"github.com/pairchat/gofiber-dm-api/testutil"
)

func TestFindByPairEitherDirection(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewRelationshipRepository(db)

	a := testutil.NewUser(t, db)
	b := testutil.NewUser(t, db)

	rel := &models.Relationship{
		PairLow:  a.ID,
		PairHigh: b.ID,
		Status:   models.RelationshipPending,
	}
	require.NoError(t, repo.Create(rel))

	forward, err := repo.FindByPair(a.ID, b.ID)
	require.NoError(t, err)
	reversed, err := repo.FindByPair(b.ID, a.ID)
	require.NoError(t, err)

	assert.Equal(t, forward.ID, reversed.ID)
}

func TestCreateNormalizesReversedPair(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewRelationshipRepository(db)

	a := testutil.NewUser(t, db)
	b := testutil.NewUser(t, db)
	low, high := models.NormalizePair(a.ID, b.ID)

	// Deliberately reversed.
	rel := &models.Relationship{
		PairLow:  high,
		PairHigh: low,
		Status:   models.RelationshipPending,
	}
	require.NoError(t, repo.Create(rel))

	assert.Equal(t, low, rel.PairLow)
	assert.Equal(t, high, rel.PairHigh)
}

func TestUpdateStatusIfConditionalTransition(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewRelationshipRepository(db)

	a := testutil.NewUser(t, db)
	b := testutil.NewUser(t, db)
	rel := &models.Relationship{
		PairLow:  a.ID,
		PairHigh: b.ID,
		Status:   models.RelationshipPending,
	}
	require.NoError(t, repo.Create(rel))

	affected, err := repo.UpdateStatusIf(rel.ID, models.RelationshipPending, models.RelationshipAccepted, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// A second transition with the stale expectation loses: zero rows, state
	// untouched.
	affected, err = repo.UpdateStatusIf(rel.ID, models.RelationshipPending, models.RelationshipBlocked, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	stored, err := repo.FindByID(rel.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipAccepted, stored.Status)
}

func TestListByStatusForBothSides(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewRelationshipRepository(db)

	a := testutil.NewUser(t, db)
	b := testutil.NewUser(t, db)
	c := testutil.NewUser(t, db)

	require.NoError(t, repo.Create(&models.Relationship{
		PairLow: a.ID, PairHigh: b.ID, Status: models.RelationshipAccepted,
	}))
	require.NoError(t, repo.Create(&models.Relationship{
		PairLow: a.ID, PairHigh: c.ID, Status: models.RelationshipPending,
	}))

	accepted, err := repo.ListByStatusFor(a.ID, models.RelationshipAccepted)
	require.NoError(t, err)
	assert.Len(t, accepted, 1)

	// b sees the accepted row from its side of the pair too.
	accepted, err = repo.ListByStatusFor(b.ID, models.RelationshipAccepted)
	require.NoError(t, err)
	assert.Len(t, accepted, 1)

	pending, err := repo.ListByStatusFor(b.ID, models.RelationshipPending)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
