package realtime

import (
	"time"

	"github.com/wmoldes/roster-backend/internal/domain/dashboard"
	"github.com/wmoldes/roster-backend/internal/domain/employee"
)

// TopicEmployees is the hub topic every roster subscriber listens on.
const TopicEmployees = "funcionarios"

// Event names sent over the stream.
const (
	EventConnected = "connected"
	EventSnapshot  = "snapshot"
	EventPing      = "ping"
)

// Snapshot is the full roster as delivered to subscribers.
type Snapshot struct {
	Employees   []employee.EmployeeResponse `json:"employees"`
	Stats       dashboard.Stats             `json:"stats"`
	GeneratedAt time.Time                   `json:"generated_at"`
}

// Change is a single row change reported by the store.
type Change struct {
	Operation string `json:"op"`
	ID        string `json:"id"`
}
