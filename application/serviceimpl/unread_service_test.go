// application/serviceimpl/unread_service_test.go
package serviceimpl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pairchat/gofiber-dm-api/domain/models"
	"github.com/pairchat/gofiber-dm-api/infrastructure/persistence/postgres"
	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
	"github.com/pairchat/gofiber-dm-api/testutil"
)

func TestUnreadCountsGroupBySender(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewMessageRepository(db)
	svc := NewUnreadService(repo, zap.NewNop())

	receiver := testutil.NewUser(t, db)
	s := testutil.NewUser(t, db)
	other := testutil.NewUser(t, db)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		msg := &models.Message{
			SenderID: s.ID, ReceiverID: receiver.ID,
			Content: "unread", MessageType: models.MessageTypeText,
		}
		require.NoError(t, repo.Create(msg))
		ids = append(ids, msg.ID)
	}

	counts, err := svc.UnreadCounts(receiver.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[s.ID])

	// A sender with nothing unread is absent, not zero.
	_, present := counts[other.ID]
	assert.False(t, present)

	// Mark two read: the count drops, the map keeps only live senders.
	updated, err := svc.MarkRead(receiver.ID, ids[:2])
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	counts, err = svc.UnreadCounts(receiver.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[s.ID])

	// Re-marking the same ids changes nothing.
	updated, err = svc.MarkRead(receiver.ID, ids[:2])
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)
}

func TestMarkReadRequiresIDs(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewUnreadService(postgres.NewMessageRepository(db), zap.NewNop())

	_, err := svc.MarkRead(uuid.New(), nil)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidArgument))
}
