package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wmoldes/roster-backend/internal/domain/realtime"
)

// EmployeesChannel is the notification channel fed by the employees trigger.
const EmployeesChannel = "employees_changed"

type changeListenerImpl struct {
	pool       *pgxpool.Pool
	channel    string
	retryDelay time.Duration
}

// NewChangeListener listens on channel using a dedicated pool connection.
func NewChangeListener(pool *pgxpool.Pool, channel string, retryDelay time.Duration) realtime.ChangeListener {
	return &changeListenerImpl{pool: pool, channel: channel, retryDelay: retryDelay}
}

// Listen implements realtime.ChangeListener. Lost connections are re-established
// after retryDelay until ctx is done.
func (l *changeListenerImpl) Listen(ctx context.Context, onChange func(realtime.Change)) error {
	for {
		err := l.listenOnce(ctx, onChange)
		if ctx.Err() != nil {
			return nil
		}
		slog.Error("Change listener disconnected", "channel", l.channel, "error", err)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.retryDelay):
		}
	}
}

func (l *changeListenerImpl) listenOnce(ctx context.Context, onChange func(realtime.Change)) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen connection: %w", err)
	}
	defer conn.Release()

	channel := pgx.Identifier{l.channel}.Sanitize()
	if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
		return fmt.Errorf("listen on %s: %w", l.channel, err)
	}
	// The connection goes back to the pool, so drop the subscription first.
	defer func() {
		unlistenCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_, _ = conn.Exec(unlistenCtx, "UNLISTEN "+channel)
	}()
	slog.Info("Change listener started", "channel", l.channel)

	// A reconnect may have missed notifications, so resync once.
	onChange(realtime.Change{Operation: "RESYNC"})

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}
		onChange(decodeChange(n.Payload))
	}
}

// decodeChange reads the trigger payload. Unknown payloads still signal a change.
func decodeChange(payload string) realtime.Change {
	var change realtime.Change
	if err := json.Unmarshal([]byte(payload), &change); err != nil {
		slog.Warn("Unreadable change payload", "payload", payload, "error", err)
		return realtime.Change{Operation: "UNKNOWN"}
	}
	return change
}
