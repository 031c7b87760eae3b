package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmoldes/roster-backend/internal/domain/employee"
	"github.com/wmoldes/roster-backend/internal/domain/realtime"
	"github.com/wmoldes/roster-backend/internal/pkg/sse"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}

type listOnlyRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (r listOnlyRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return r.employees, nil
}

type chanListener struct {
	changes chan realtime.Change
}

func (l chanListener) Listen(ctx context.Context, onChange func(realtime.Change)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-l.changes:
			onChange(c)
		}
	}
}

var midJune = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func testRoster() listOnlyRepo {
	return listOnlyRepo{employees: []employee.Employee{
		{ID: "1", Name: "Ana", Shift: employee.ShiftMorning, Vacation: "JUNHO/2025"},
		{ID: "2", Name: "Bruno", Shift: employee.ShiftNight, Vacation: employee.NotInformed},
	}}
}

func TestBroadcaster_Snapshot(t *testing.T) {
	b := NewBroadcaster(testRoster(), sse.NewHub(1), stubClock{now: midJune})

	snap, err := b.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Employees, 2)
	assert.Equal(t, "Férias", snap.Employees[0].StatusLabel)
	assert.Equal(t, 2, snap.Stats.Total)
	assert.Equal(t, 1, snap.Stats.Current)
	assert.Equal(t, midJune, snap.GeneratedAt)
}

func TestBroadcaster_PublishReachesSubscribers(t *testing.T) {
	hub := sse.NewHub(1)
	b := NewBroadcaster(testRoster(), hub, stubClock{now: midJune})

	ch, cleanup := hub.Subscribe(realtime.TopicEmployees)
	defer cleanup()

	require.NoError(t, b.Publish(context.Background()))

	ev := <-ch
	assert.Equal(t, realtime.EventSnapshot, ev.Event)
	snap, ok := ev.Data.(*realtime.Snapshot)
	require.True(t, ok)
	assert.Len(t, snap.Employees, 2)
}

func TestBroadcaster_PublishWithoutSubscribers(t *testing.T) {
	b := NewBroadcaster(testRoster(), sse.NewHub(1), stubClock{now: midJune})
	assert.NoError(t, b.Publish(context.Background()))
}

func TestBroadcaster_RunPublishesOnChange(t *testing.T) {
	hub := sse.NewHub(4)
	b := NewBroadcaster(testRoster(), hub, stubClock{now: midJune})
	ch, cleanup := hub.Subscribe(realtime.TopicEmployees)
	defer cleanup()

	listener := chanListener{changes: make(chan realtime.Change)}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx, listener) }()

	listener.changes <- realtime.Change{Operation: "INSERT", ID: "3"}

	select {
	case ev := <-ch:
		assert.Equal(t, realtime.EventSnapshot, ev.Event)
	case <-time.After(time.Second):
		t.Fatal("no snapshot published")
	}

	cancel()
	assert.NoError(t, <-done)
}
