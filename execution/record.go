// Package execution tracks each agent request as an execution record with a
// small lifecycle state machine, and drives records through that lifecycle
// while delegating the actual work to a message processor.
package execution

import "time"

// Status is the current state of an execution.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusFailed    Status = "failed"
)

// Terminal returns true if no further transitions are permitted from this
// status.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusFailed:
		return true
	}
	return false
}

// Request is the input payload for one execution.
type Request struct {
	Message        string         `json:"message"`
	ConversationID string         `json:"conversation_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// Result is the structured payload returned by Execute, successful or not.
type Result struct {
	ExecutionID string `json:"execution_id"`
	Response    string `json:"response"`
	Status      string `json:"status"` // "success" or "error"
	Timestamp   string `json:"timestamp"`
	AgentType   string `json:"agent_type"`
	Error       string `json:"error,omitempty"`
}

// Record is one tracked execution.
//
// Invariants, maintained by the Executor (the store performs no validation):
// Result is non-nil iff Status is Completed; Error is non-empty iff Status is
// Failed; EndTime is nil iff Status is Pending or Running; terminal records
// are never mutated again.
type Record struct {
	ID        string     `json:"id"`
	Status    Status     `json:"status"`
	Request   Request    `json:"request"`
	Result    *Result    `json:"result,omitempty"`
	Error     string     `json:"error,omitempty"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}

// Summary is the projection returned by ListExecutions: no result or error
// payload.
type Summary struct {
	ExecutionID string     `json:"execution_id"`
	Status      Status     `json:"status"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}

// Snapshot is the read-only projection returned by GetStatus.
type Snapshot struct {
	ExecutionID string     `json:"execution_id"`
	Status      Status     `json:"status"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Result      *Result    `json:"result,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// CancelResult is the typed outcome of a Cancel call. Status is "cancelled"
// on success and "error" otherwise; failure is a normal return value, never a
// panic or Go error.
type CancelResult struct {
	ExecutionID string `json:"execution_id"`
	Status      string `json:"status"`
	Message     string `json:"message"`
}
