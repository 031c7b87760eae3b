package realtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wmoldes/roster-backend/internal/domain/dashboard"
	"github.com/wmoldes/roster-backend/internal/domain/employee"
	"github.com/wmoldes/roster-backend/internal/domain/realtime"
	"github.com/wmoldes/roster-backend/internal/pkg/clock"
	"github.com/wmoldes/roster-backend/internal/pkg/sse"
	"golang.org/x/sync/errgroup"
)

type BroadcasterImpl struct {
	employeeRepo employee.EmployeeRepository
	hub          *sse.Hub
	clock        clock.Clock
}

func NewBroadcaster(employeeRepo employee.EmployeeRepository, hub *sse.Hub, clk clock.Clock) *BroadcasterImpl {
	return &BroadcasterImpl{
		employeeRepo: employeeRepo,
		hub:          hub,
		clock:        clk,
	}
}

// Snapshot implements realtime.Broadcaster.
func (b *BroadcasterImpl) Snapshot(ctx context.Context) (*realtime.Snapshot, error) {
	employees, err := b.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	now := b.clock.Now()
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e, now))
	}

	return &realtime.Snapshot{
		Employees:   responses,
		Stats:       dashboard.Aggregate(employees, now),
		GeneratedAt: now,
	}, nil
}

// Publish implements realtime.Broadcaster.
func (b *BroadcasterImpl) Publish(ctx context.Context) error {
	if b.hub.SubscriberCount(realtime.TopicEmployees) == 0 {
		return nil
	}

	snapshot, err := b.Snapshot(ctx)
	if err != nil {
		return err
	}

	delivered := b.hub.Publish(realtime.TopicEmployees, sse.Event{
		Event: realtime.EventSnapshot,
		Data:  snapshot,
	})
	slog.Debug("Roster snapshot published", "employees", len(snapshot.Employees), "delivered", delivered)
	return nil
}

// Run publishes a fresh snapshot after every change reported by listener until ctx is done.
// Changes that arrive while a snapshot is being built collapse into one follow-up publish.
func (b *BroadcasterImpl) Run(ctx context.Context, listener realtime.ChangeListener) error {
	pending := make(chan struct{}, 1)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return listener.Listen(ctx, func(change realtime.Change) {
			slog.Debug("Roster change received", "op", change.Operation, "id", change.ID)
			select {
			case pending <- struct{}{}:
			default:
			}
		})
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-pending:
				if err := b.Publish(ctx); err != nil {
					slog.Error("Failed to publish roster snapshot", "error", err)
				}
			}
		}
	})

	return g.Wait()
}
