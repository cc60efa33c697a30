// domain/port/push_sender.go
package port

import (
	"context"
	"errors"

	"github.com/pairchat/gofiber-dm-api/domain/models"
)

// ErrSubscriptionGone signals that the remote push service reported the
// endpoint permanently invalid (404/410 class). The dispatcher prunes the
// subscription on this error and on this error only.
var ErrSubscriptionGone = errors.New("push subscription gone")

// PushSender delivers one payload to one subscription endpoint.
type PushSender interface {
	Send(ctx context.Context, sub *models.PushSubscription, payload []byte) error
}
