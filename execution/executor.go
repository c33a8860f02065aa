package execution

import (
	"context"
	"fmt"
	"time"

	"github.com/zava-ai/zava"
	"github.com/zava-ai/zava/slogger"
)

// DefaultAgentType is reported in result payloads when no agent type is
// configured.
const DefaultAgentType = "product_manager"

// Options configure a new Executor.
type Options struct {
	Store     *Store
	Processor zava.MessageProcessor
	AgentType string
	Logger    slogger.Logger
}

// Executor drives executions through their lifecycle: it creates the record,
// invokes the message processor, and writes the terminal state and
// result or error back into the store.
type Executor struct {
	store     *Store
	processor zava.MessageProcessor
	agentType string
	logger    slogger.Logger
}

// NewExecutor creates an Executor. The store and processor are required.
func NewExecutor(opts Options) (*Executor, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if opts.Processor == nil {
		return nil, fmt.Errorf("processor is required")
	}
	if opts.AgentType == "" {
		opts.AgentType = DefaultAgentType
	}
	if opts.Logger == nil {
		opts.Logger = slogger.DefaultLogger
	}
	return &Executor{
		store:     opts.Store,
		processor: opts.Processor,
		agentType: opts.AgentType,
		logger:    opts.Logger,
	}, nil
}

// Store returns the execution store shared with the HTTP facade.
func (e *Executor) Store() *Store {
	return e.store
}

// Execute runs one request to completion. It is total: validation errors and
// processor failures are recorded as a Failed execution and returned as an
// error-shaped Result; Execute never returns a Go error and never panics.
func (e *Executor) Execute(ctx context.Context, request Request) *Result {
	id := e.store.Create(request)
	logger := e.logger.With("execution_id", id)
	logger.Info("starting execution")

	// A Cancel may land between Create and this update; terminal records
	// stay as they are and the processor is never invoked.
	var cancelled bool
	e.store.Update(id, func(r *Record) {
		if r.Status.Terminal() {
			cancelled = true
			return
		}
		r.Status = StatusRunning
	})
	if cancelled {
		logger.Info("execution cancelled before start")
		return &Result{
			ExecutionID: id,
			Status:      "error",
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			AgentType:   e.agentType,
			Error:       "Execution cancelled",
		}
	}
	logger.Debug("execution running")

	if request.Message == "" {
		return e.fail(id, logger, fmt.Errorf("message is required"))
	}

	response, err := e.processor.ProcessMessage(ctx, request.Message)
	if err != nil {
		return e.fail(id, logger, err)
	}

	result := &Result{
		ExecutionID: id,
		Response:    response,
		Status:      "success",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		AgentType:   e.agentType,
	}
	e.store.Update(id, func(r *Record) {
		// A concurrent Cancel may have won the race; terminal records
		// stay as they are.
		if r.Status.Terminal() {
			return
		}
		now := time.Now().UTC()
		r.Status = StatusCompleted
		r.Result = result
		r.EndTime = &now
	})
	logger.Info("execution completed")
	return result
}

// fail marks the execution as Failed and returns the error-shaped result.
func (e *Executor) fail(id string, logger slogger.Logger, err error) *Result {
	errMsg := fmt.Sprintf("Execution failed: %s", err)
	logger.Error("execution failed", "error", errMsg)

	e.store.Update(id, func(r *Record) {
		if r.Status.Terminal() {
			return
		}
		now := time.Now().UTC()
		r.Status = StatusFailed
		r.Error = errMsg
		r.EndTime = &now
	})
	return &Result{
		ExecutionID: id,
		Response:    fmt.Sprintf("I apologize, but I encountered an error processing your request: %s", errMsg),
		Status:      "error",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		AgentType:   e.agentType,
		Error:       errMsg,
	}
}

// Cancel transitions a pending or running execution to Cancelled. Unknown ids
// and already-terminal records produce an error-shaped result, not a Go
// error. Cancellation only updates the record; it does not interrupt an
// in-flight processor call.
func (e *Executor) Cancel(id string) *CancelResult {
	var terminal Status
	found := e.store.Update(id, func(r *Record) {
		if r.Status.Terminal() {
			terminal = r.Status
			return
		}
		now := time.Now().UTC()
		r.Status = StatusCancelled
		r.EndTime = &now
	})
	if !found {
		return &CancelResult{
			ExecutionID: id,
			Status:      "error",
			Message:     "Execution not found",
		}
	}
	if terminal != "" {
		return &CancelResult{
			ExecutionID: id,
			Status:      "error",
			Message:     fmt.Sprintf("Execution already %s", terminal),
		}
	}
	e.logger.Info("execution cancelled", "execution_id", id)
	return &CancelResult{
		ExecutionID: id,
		Status:      "cancelled",
		Message:     "Execution cancelled successfully",
	}
}

// GetStatus returns a read-only projection of the record, or false if the id
// is unknown.
func (e *Executor) GetStatus(id string) (*Snapshot, bool) {
	record, ok := e.store.Get(id)
	if !ok {
		return nil, false
	}
	return &Snapshot{
		ExecutionID: record.ID,
		Status:      record.Status,
		StartTime:   record.StartTime,
		EndTime:     record.EndTime,
		Result:      record.Result,
		Error:       record.Error,
	}, true
}

// ListExecutions returns summaries for all executions in insertion order.
// Cancelled and failed executions are included; entries are never removed.
func (e *Executor) ListExecutions() []Summary {
	records := e.store.List()
	summaries := make([]Summary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, Summary{
			ExecutionID: record.ID,
			Status:      record.Status,
			StartTime:   record.StartTime,
			EndTime:     record.EndTime,
		})
	}
	return summaries
}
