// infrastructure/push/webpush/webpush_sender.go
package webpush

import (
	"context"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/pairchat/gofiber-dm-api/domain/models"
	"github.com/pairchat/gofiber-dm-api/domain/port"
	"github.com/pairchat/gofiber-dm-api/pkg/configs"
)

type webPushSender struct {
	subscriber string
	publicKey  string
	privateKey string
	ttl        int
}

func NewWebPushSender(cfg configs.PushConfig) port.PushSender {
	return &webPushSender{
		subscriber: cfg.Subscriber,
		publicKey:  cfg.VAPIDPublicKey,
		privateKey: cfg.VAPIDPrivateKey,
		ttl:        cfg.TTL,
	}
}

func (s *webPushSender) Send(ctx context.Context, sub *models.PushSubscription, payload []byte) error {
	target := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, target, &webpush.Options{
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             s.ttl,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// 404/410 mean the browser dropped the subscription; the caller prunes it.
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		return port.ErrSubscriptionGone
	}
	return nil
}
