// Package notify delivers user notifications in the background.
package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gamearena/pkg/workerpool"
)

//go:generate mockgen -source=notify.go -destination=mocks.go -package=notify

type Message struct {
	UserID string    `json:"user_id"`
	Title  string    `json:"title"`
	Body   string    `json:"message"`
	SentAt time.Time `json:"sent_at"`
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Dispatcher hands messages to its senders on a worker pool. Delivery
// failures are logged and never reach the caller.
type Dispatcher struct {
	senders []Sender
	pool    *workerpool.Pool
	timeout time.Duration
	now     func() time.Time
}

func NewDispatcher(pool *workerpool.Pool, timeout time.Duration, senders ...Sender) *Dispatcher {
	return &Dispatcher{
		senders: senders,
		pool:    pool,
		timeout: timeout,
		now:     time.Now,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, userID, title, message string) {
	msg := Message{UserID: userID, Title: title, Body: message, SentAt: d.now().UTC()}
	for _, sender := range d.senders {
		sender := sender
		queued := d.pool.TrySubmit(func() error {
			sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
			defer cancel()
			if err := sender.Send(sendCtx, msg); err != nil {
				zap.L().Warn("notification not delivered",
					zap.String("userID", userID), zap.String("title", title), zap.Error(err))
			}
			return nil
		})
		if !queued {
			zap.L().Warn("notification dropped, queue is full",
				zap.String("userID", userID), zap.String("title", title))
		}
	}
}

// LogSender writes notifications to the application log.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	zap.L().Info("notification",
		zap.String("userID", msg.UserID),
		zap.String("title", msg.Title),
		zap.String("message", msg.Body))
	return nil
}
