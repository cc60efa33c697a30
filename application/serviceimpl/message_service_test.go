// application/serviceimpl/message_service_test.go
package serviceimpl

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pairchat/gofiber-dm-api/domain/dto"
	"github.com/pairchat/gofiber-dm-api/domain/models"
	"github.com/pairchat/gofiber-dm-api/domain/port"
	"github.com/pairchat/gofiber-dm-api/domain/service"
	"github.com/pairchat/gofiber-dm-api/infrastructure/persistence/postgres"
	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
	"github.com/pairchat/gofiber-dm-api/testutil"
)

// fakeRealtime records deliveries instead of writing to sockets.
type fakeRealtime struct {
	mu     sync.Mutex
	toUser []recordedEvent
	toSess []recordedEvent
}

type recordedEvent struct {
	Target uuid.UUID
	Event  string
	Data   interface{}
}

func newFakeRealtime() *fakeRealtime {
	return &fakeRealtime{}
}

func (f *fakeRealtime) DeliverToUser(userID uuid.UUID, event string, data interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toUser = append(f.toUser, recordedEvent{Target: userID, Event: event, Data: data})
}

func (f *fakeRealtime) DeliverToSession(sessionID uuid.UUID, event string, data interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toSess = append(f.toSess, recordedEvent{Target: sessionID, Event: event, Data: data})
}

func (f *fakeRealtime) userEvents(event string) []recordedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recordedEvent
	for _, e := range f.toUser {
		if e.Event == event {
			out = append(out, e)
		}
	}
	return out
}

// fakePushService records Notify calls and signals each one on a channel so
// tests can wait for the async hand-off.
type fakePushService struct {
	mu       sync.Mutex
	notified []uuid.UUID
	done     chan struct{}
}

func newFakePushService() *fakePushService {
	return &fakePushService{done: make(chan struct{}, 16)}
}

func (f *fakePushService) Subscribe(userID uuid.UUID, req *dto.SubscribeRequest) (*models.PushSubscription, error) {
	return nil, nil
}

func (f *fakePushService) Unsubscribe(userID uuid.UUID, endpoint string) error { return nil }

func (f *fakePushService) Notify(ctx context.Context, userID uuid.UUID, payload *dto.PushPayload) (*dto.DispatchResult, error) {
	f.mu.Lock()
	f.notified = append(f.notified, userID)
	f.mu.Unlock()
	f.done <- struct{}{}
	return &dto.DispatchResult{}, nil
}

func (f *fakePushService) waitForNotify(t *testing.T) {
	t.Helper()
	select {
	case <-f.done:
	case <-time.After(2 * time.Second):
		t.Fatal("push hand-off never happened")
	}
}

type messageFixture struct {
	svc      service.MessageService
	relSvc   service.RelationshipService
	realtime *fakeRealtime
	push     *fakePushService
	db       *gorm.DB
}

func newMessageFixture(t *testing.T) *messageFixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	log := zap.NewNop()

	relSvc := NewRelationshipService(
		postgres.NewRelationshipRepository(db), postgres.NewUserRepository(db), log)
	realtime := newFakeRealtime()
	push := newFakePushService()

	svc := NewMessageService(
		postgres.NewMessageRepository(db), postgres.NewUserRepository(db),
		relSvc, push, realtime, log)

	return &messageFixture{svc: svc, relSvc: relSvc, realtime: realtime, push: push, db: db}
}

func (fx *messageFixture) befriend(t *testing.T, a, b uuid.UUID) {
	t.Helper()
	rel, err := fx.relSvc.Request(a, b)
	require.NoError(t, err)
	_, err = fx.relSvc.Accept(rel.ID, b)
	require.NoError(t, err)
}

func TestSendRequiresAcceptedRelationship(t *testing.T) {
	fx := newMessageFixture(t)
	a := testutil.NewUser(t, fx.db)
	b := testutil.NewUser(t, fx.db)

	_, err := fx.svc.Send(a.ID, uuid.Nil, &dto.SendMessageRequest{
		ReceiverID: b.ID, Content: "hello",
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodePermissionDenied))

	// Nothing was persisted, nothing delivered.
	var count int64
	require.NoError(t, fx.db.Model(&models.Message{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	assert.Empty(t, fx.realtime.userEvents(port.EventMessageReceive))
}

func TestSendPendingPairStillGated(t *testing.T) {
	fx := newMessageFixture(t)
	a := testutil.NewUser(t, fx.db)
	b := testutil.NewUser(t, fx.db)

	_, err := fx.relSvc.Request(a.ID, b.ID)
	require.NoError(t, err)

	_, err = fx.svc.Send(a.ID, uuid.Nil, &dto.SendMessageRequest{
		ReceiverID: b.ID, Content: "too soon",
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodePermissionDenied))
}

func TestSendPersistsDeliversEchoesAndPushes(t *testing.T) {
	fx := newMessageFixture(t)
	a := testutil.NewUser(t, fx.db)
	b := testutil.NewUser(t, fx.db)
	fx.befriend(t, a.ID, b.ID)

	origin := uuid.New()
	msg, err := fx.svc.Send(a.ID, origin, &dto.SendMessageRequest{
		ReceiverID: b.ID, Content: "  hello there  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello there", msg.Content)
	assert.Equal(t, models.MessageTypeText, msg.MessageType)
	assert.False(t, msg.IsRead)

	received := fx.realtime.userEvents(port.EventMessageReceive)
	require.Len(t, received, 1)
	assert.Equal(t, b.ID, received[0].Target)

	fx.realtime.mu.Lock()
	require.Len(t, fx.realtime.toSess, 1)
	assert.Equal(t, origin, fx.realtime.toSess[0].Target)
	assert.Equal(t, port.EventMessageSent, fx.realtime.toSess[0].Event)
	fx.realtime.mu.Unlock()

	fx.push.waitForNotify(t)
	fx.push.mu.Lock()
	assert.Equal(t, []uuid.UUID{b.ID}, fx.push.notified)
	fx.push.mu.Unlock()
}

func TestSendOverRESTSkipsEcho(t *testing.T) {
	fx := newMessageFixture(t)
	a := testutil.NewUser(t, fx.db)
	b := testutil.NewUser(t, fx.db)
	fx.befriend(t, a.ID, b.ID)

	_, err := fx.svc.Send(a.ID, uuid.Nil, &dto.SendMessageRequest{
		ReceiverID: b.ID, Content: "via REST",
	})
	require.NoError(t, err)
	fx.push.waitForNotify(t)

	fx.realtime.mu.Lock()
	assert.Empty(t, fx.realtime.toSess)
	fx.realtime.mu.Unlock()
}

func TestSendValidation(t *testing.T) {
	fx := newMessageFixture(t)
	a := testutil.NewUser(t, fx.db)
	b := testutil.NewUser(t, fx.db)
	fx.befriend(t, a.ID, b.ID)

	_, err := fx.svc.Send(a.ID, uuid.Nil, &dto.SendMessageRequest{
		ReceiverID: b.ID, Content: "   ",
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidArgument))

	_, err = fx.svc.Send(a.ID, uuid.Nil, &dto.SendMessageRequest{
		ReceiverID: b.ID, Content: "x", MessageType: "carrier-pigeon",
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidArgument))

	_, err = fx.svc.Send(a.ID, uuid.Nil, &dto.SendMessageRequest{
		ReceiverID: a.ID, Content: "self",
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidArgument))
}

func TestSoftDeleteSenderOnly(t *testing.T) {
	fx := newMessageFixture(t)
	a := testutil.NewUser(t, fx.db)
	b := testutil.NewUser(t, fx.db)
	fx.befriend(t, a.ID, b.ID)

	msg, err := fx.svc.Send(a.ID, uuid.Nil, &dto.SendMessageRequest{
		ReceiverID: b.ID, Content: "take this back",
	})
	require.NoError(t, err)
	fx.push.waitForNotify(t)

	err = fx.svc.SoftDelete(msg.ID, b.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodePermissionDenied))

	require.NoError(t, fx.svc.SoftDelete(msg.ID, a.ID))

	// Deleted messages vanish from history; the row itself stays.
	history, err := fx.svc.Conversation(a.ID, b.ID, 10, nil)
	require.NoError(t, err)
	assert.Empty(t, history)

	var stored models.Message
	require.NoError(t, fx.db.First(&stored, "id = ?", msg.ID).Error)
	assert.True(t, stored.IsDeleted)
	assert.Equal(t, "take this back", stored.Content)
}

func TestReactReplacesEarlierReaction(t *testing.T) {
	fx := newMessageFixture(t)
	a := testutil.NewUser(t, fx.db)
	b := testutil.NewUser(t, fx.db)
	fx.befriend(t, a.ID, b.ID)

	msg, err := fx.svc.Send(a.ID, uuid.Nil, &dto.SendMessageRequest{
		ReceiverID: b.ID, Content: "react to me",
	})
	require.NoError(t, err)
	fx.push.waitForNotify(t)

	_, err = fx.svc.React(msg.ID, b.ID, "👍")
	require.NoError(t, err)
	updated, err := fx.svc.React(msg.ID, b.ID, "❤️")
	require.NoError(t, err)

	require.Len(t, updated.Reactions, 1)
	assert.Equal(t, "❤️", updated.Reactions[0].Emoji)
	assert.Equal(t, b.ID, updated.Reactions[0].UserID)

	_, err = fx.svc.React(msg.ID, testutil.NewUser(t, fx.db).ID, "👀")
	assert.True(t, apperrors.IsCode(err, apperrors.CodePermissionDenied))
}
