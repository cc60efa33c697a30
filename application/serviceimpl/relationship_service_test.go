// application/serviceimpl/relationship_service_test.go
package serviceimpl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pairchat/gofiber-dm-api/domain/dto"
	"github.com/pairchat/gofiber-dm-api/domain/models"
	"github.com/pairchat/gofiber-dm-api/domain/service"
	"github.com/pairchat/gofiber-dm-api/infrastructure/persistence/postgres"
	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
	"github.com/pairchat/gofiber-dm-api/testutil"
)

func newRelationshipService(t *testing.T) (service.RelationshipService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewRelationshipService(
		postgres.NewRelationshipRepository(db),
		postgres.NewUserRepository(db),
		zap.NewNop(),
	), db
}

func TestRequestCreatesSingleRowEitherDirection(t *testing.T) {
	svc, db := newRelationshipService(t)
	a := testutil.NewUser(t, db)
	b := testutil.NewUser(t, db)

	rel, err := svc.Request(a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipPending, rel.Status)
	require.NotNil(t, rel.ActingParty)
	assert.Equal(t, a.ID, *rel.ActingParty)

	// The reverse direction hits the same row: duplicates are impossible.
	_, err = svc.Request(b.ID, a.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeAlreadyExists))

	var count int64
	require.NoError(t, db.Model(&models.Relationship{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRequestRejectsSelfAndUnknownTarget(t *testing.T) {
	svc, db := newRelationshipService(t)
	a := testutil.NewUser(t, db)

	_, err := svc.Request(a.ID, a.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidArgument))

	_, err = svc.Request(a.ID, uuid.New())
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestAcceptOnlyByRecipient(t *testing.T) {
	svc, db := newRelationshipService(t)
	a := testutil.NewUser(t, db)
	b := testutil.NewUser(t, db)

	rel, err := svc.Request(a.ID, b.ID)
	require.NoError(t, err)

	// The requester cannot accept their own request.
	_, err = svc.Accept(rel.ID, a.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodePermissionDenied))

	accepted, err := svc.Accept(rel.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipAccepted, accepted.Status)
	assert.Nil(t, accepted.ActingParty)
	assert.NotNil(t, accepted.AcceptedAt)

	// Accepting an already accepted row conflicts.
	_, err = svc.Accept(rel.ID, b.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeConflict))
}

func TestAcceptByStrangerLooksLikeMissing(t *testing.T) {
	svc, db := newRelationshipService(t)
	a := testutil.NewUser(t, db)
	b := testutil.NewUser(t, db)
	outsider := testutil.NewUser(t, db)

	rel, err := svc.Request(a.ID, b.ID)
	require.NoError(t, err)

	_, err = svc.Accept(rel.ID, outsider.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestRejectDeletesPendingRow(t *testing.T) {
	svc, db := newRelationshipService(t)
	a := testutil.NewUser(t, db)
	b := testutil.NewUser(t, db)

	rel, err := svc.Request(a.ID, b.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Reject(rel.ID, b.ID))

	view, err := svc.StatusBetween(a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.StatusNone, view.Status)

	// A fresh request after rejection starts over.
	_, err = svc.Request(a.ID, b.ID)
	require.NoError(t, err)
}

func TestUnfriendKeepsRowAndAllowsRevival(t *testing.T) {
	svc, db := newRelationshipService(t)
	a := testutil.NewUser(t, db)
	b := testutil.NewUser(t, db)

	rel, err := svc.Request(a.ID, b.ID)
	require.NoError(t, err)
	_, err = svc.Accept(rel.ID, b.ID)
	require.NoError(t, err)

	unfriended, err := svc.Unfriend(a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipUnfriended, unfriended.Status)
	assert.Nil(t, unfriended.ActingParty)

	// A new request revives the same row instead of inserting another.
	revived, err := svc.Request(b.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, rel.ID, revived.ID)
	assert.Equal(t, models.RelationshipPending, revived.Status)
	require.NotNil(t, revived.ActingParty)
	assert.Equal(t, b.ID, *revived.ActingParty)
}

func TestUnfriendRequiresAccepted(t *testing.T) {
	svc, db := newRelationshipService(t)
	a := testutil.NewUser(t, db)
	b := testutil.NewUser(t, db)

	_, err := svc.Unfriend(a.ID, b.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodePermissionDenied))

	_, err = svc.Request(a.ID, b.ID)
	require.NoError(t, err)
	_, err = svc.Unfriend(a.ID, b.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodePermissionDenied))
}

func TestBlockFromAnyStateAndUnblockOnlyByBlocker(t *testing.T) {
	svc, db := newRelationshipService(t)
	a := testutil.NewUser(t, db)
	b := testutil.NewUser(t, db)

	// Block with no prior row.
	rel, err := svc.Block(a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipBlocked, rel.Status)
	require.NotNil(t, rel.ActingParty)
	assert.Equal(t, a.ID, *rel.ActingParty)

	// A blocked pair rejects new requests outright.
	_, err = svc.Request(b.ID, a.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodePermissionDenied))

	// Only the blocker may unblock.
	_, err = svc.Unblock(b.ID, a.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodePermissionDenied))

	unblocked, err := svc.Unblock(a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipUnfriended, unblocked.Status)
	assert.Nil(t, unblocked.ActingParty)

	// Unblock does not restore the friendship; messaging needs a new cycle.
	ok, err := svc.CanMessage(a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBlockOverridesAcceptedFriendship(t *testing.T) {
	svc, db := newRelationshipService(t)
	a := testutil.NewUser(t, db)
	b := testutil.NewUser(t, db)

	rel, err := svc.Request(a.ID, b.ID)
	require.NoError(t, err)
	_, err = svc.Accept(rel.ID, b.ID)
	require.NoError(t, err)

	blocked, err := svc.Block(b.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipBlocked, blocked.Status)
	assert.Nil(t, blocked.AcceptedAt)

	ok, err := svc.CanMessage(a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStatusBetweenPerspectives(t *testing.T) {
	svc, db := newRelationshipService(t)
	a := testutil.NewUser(t, db)
	b := testutil.NewUser(t, db)

	_, err := svc.Request(a.ID, b.ID)
	require.NoError(t, err)

	fromRequester, err := svc.StatusBetween(a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipPending, fromRequester.Status)
	assert.Equal(t, "outgoing", fromRequester.Direction)
	assert.Equal(t, b.ID, fromRequester.OtherID)

	fromRecipient, err := svc.StatusBetween(b.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "incoming", fromRecipient.Direction)
	assert.Equal(t, a.ID, fromRecipient.OtherID)
}

func TestFriendsListsProfiles(t *testing.T) {
	svc, db := newRelationshipService(t)
	a := testutil.NewUser(t, db)
	b := testutil.NewUser(t, db)
	c := testutil.NewUser(t, db)

	rel, err := svc.Request(a.ID, b.ID)
	require.NoError(t, err)
	_, err = svc.Accept(rel.ID, b.ID)
	require.NoError(t, err)

	rel2, err := svc.Request(c.ID, a.ID)
	require.NoError(t, err)
	_, err = svc.Accept(rel2.ID, a.ID)
	require.NoError(t, err)

	friends, err := svc.Friends(a.ID)
	require.NoError(t, err)
	require.Len(t, friends, 2)

	ids := []string{friends[0].User.ID.String(), friends[1].User.ID.String()}
	assert.ElementsMatch(t, []string{b.ID.String(), c.ID.String()}, ids)
	assert.NotEmpty(t, friends[0].User.Username)
}
