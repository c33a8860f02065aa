package execution

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zava-ai/zava/slogger"
)

// processorFunc adapts a function to the zava.MessageProcessor interface.
type processorFunc func(ctx context.Context, message string) (string, error)

func (f processorFunc) ProcessMessage(ctx context.Context, message string) (string, error) {
	return f(ctx, message)
}

func echoProcessor(response string) processorFunc {
	return func(ctx context.Context, message string) (string, error) {
		return response, nil
	}
}

func failingProcessor(err error) processorFunc {
	return func(ctx context.Context, message string) (string, error) {
		return "", err
	}
}

func newTestExecutor(t *testing.T, processor processorFunc) *Executor {
	t.Helper()
	executor, err := NewExecutor(Options{
		Store:     NewStore(),
		Processor: processor,
	})
	require.NoError(t, err)
	return executor
}

func TestNewExecutorRequiresDependencies(t *testing.T) {
	_, err := NewExecutor(Options{Processor: echoProcessor("x")})
	require.Error(t, err)

	_, err = NewExecutor(Options{Store: NewStore()})
	require.Error(t, err)
}

func TestExecuteSuccess(t *testing.T) {
	executor := newTestExecutor(t, echoProcessor("world"))

	result := executor.Execute(context.Background(), Request{Message: "hello"})
	require.Equal(t, "success", result.Status)
	require.Equal(t, "world", result.Response)
	require.Equal(t, DefaultAgentType, result.AgentType)
	require.NotEmpty(t, result.ExecutionID)
	require.NotEmpty(t, result.Timestamp)
	require.Empty(t, result.Error)

	record, ok := executor.Store().Get(result.ExecutionID)
	require.True(t, ok)
	require.Equal(t, StatusCompleted, record.Status)
	require.NotNil(t, record.Result)
	require.Equal(t, result, record.Result)
	require.Empty(t, record.Error)
	require.NotNil(t, record.EndTime)
}

func TestExecuteEmptyMessage(t *testing.T) {
	executor := newTestExecutor(t, echoProcessor("unused"))

	result := executor.Execute(context.Background(), Request{Message: ""})
	require.Equal(t, "error", result.Status)
	require.Contains(t, result.Error, "required")
	require.Contains(t, result.Response, "I apologize")

	record, ok := executor.Store().Get(result.ExecutionID)
	require.True(t, ok)
	require.Equal(t, StatusFailed, record.Status)
	require.Contains(t, record.Error, "required")
	require.Nil(t, record.Result)
	require.NotNil(t, record.EndTime)
}

func TestExecuteProcessorFailure(t *testing.T) {
	executor := newTestExecutor(t, failingProcessor(errors.New("model unavailable")))

	result := executor.Execute(context.Background(), Request{Message: "hello"})
	require.Equal(t, "error", result.Status)
	require.Contains(t, result.Response, "model unavailable")
	require.Contains(t, result.Error, "model unavailable")

	record, _ := executor.Store().Get(result.ExecutionID)
	require.Equal(t, StatusFailed, record.Status)
	require.Nil(t, record.Result)
	require.Contains(t, record.Error, "model unavailable")
}

func TestExecuteResultRetrievableViaGetStatus(t *testing.T) {
	executor := newTestExecutor(t, echoProcessor("ok"))

	result := executor.Execute(context.Background(), Request{Message: "hi"})
	snapshot, ok := executor.GetStatus(result.ExecutionID)
	require.True(t, ok)
	require.Equal(t, result.ExecutionID, snapshot.ExecutionID)
	require.Equal(t, StatusCompleted, snapshot.Status)
	require.NotNil(t, snapshot.Result)
	require.NotNil(t, snapshot.EndTime)
}

func TestGetStatusUnknown(t *testing.T) {
	executor := newTestExecutor(t, echoProcessor("x"))
	snapshot, ok := executor.GetStatus("nonexistent-id")
	require.False(t, ok)
	require.Nil(t, snapshot)
}

func TestGetStatusEndTimeNilWhileActive(t *testing.T) {
	executor := newTestExecutor(t, echoProcessor("x"))
	id := executor.Store().Create(Request{Message: "pending"})

	snapshot, ok := executor.GetStatus(id)
	require.True(t, ok)
	require.Equal(t, StatusPending, snapshot.Status)
	require.Nil(t, snapshot.EndTime)

	executor.Store().Update(id, func(r *Record) { r.Status = StatusRunning })
	snapshot, _ = executor.GetStatus(id)
	require.Equal(t, StatusRunning, snapshot.Status)
	require.Nil(t, snapshot.EndTime)
}

func TestCancelPending(t *testing.T) {
	executor := newTestExecutor(t, echoProcessor("x"))
	id := executor.Store().Create(Request{Message: "pending"})

	result := executor.Cancel(id)
	require.Equal(t, "cancelled", result.Status)
	require.Equal(t, "Execution cancelled successfully", result.Message)

	record, _ := executor.Store().Get(id)
	require.Equal(t, StatusCancelled, record.Status)
	require.NotNil(t, record.EndTime)
	require.Nil(t, record.Result)
	require.Empty(t, record.Error)
}

func TestCancelTwice(t *testing.T) {
	executor := newTestExecutor(t, echoProcessor("x"))
	id := executor.Store().Create(Request{Message: "pending"})

	first := executor.Cancel(id)
	require.Equal(t, "cancelled", first.Status)

	second := executor.Cancel(id)
	require.Equal(t, "error", second.Status)
	require.Equal(t, "Execution already cancelled", second.Message)
}

func TestCancelCompleted(t *testing.T) {
	executor := newTestExecutor(t, echoProcessor("done"))
	result := executor.Execute(context.Background(), Request{Message: "hi"})

	cancel := executor.Cancel(result.ExecutionID)
	require.Equal(t, "error", cancel.Status)
	require.Equal(t, "Execution already completed", cancel.Message)

	// The terminal record is untouched.
	record, _ := executor.Store().Get(result.ExecutionID)
	require.Equal(t, StatusCompleted, record.Status)
}

func TestCancelUnknown(t *testing.T) {
	executor := newTestExecutor(t, echoProcessor("x"))
	result := executor.Cancel("nonexistent-id")
	require.Equal(t, "error", result.Status)
	require.Equal(t, "Execution not found", result.Message)
}

func TestListExecutionsCountsEveryCall(t *testing.T) {
	executor := newTestExecutor(t, failingProcessor(errors.New("boom")))

	executor.Execute(context.Background(), Request{Message: "a"})
	executor.Execute(context.Background(), Request{Message: ""})
	id := executor.Store().Create(Request{Message: "c"})
	executor.Cancel(id)

	summaries := executor.ListExecutions()
	require.Len(t, summaries, 3)
	for _, summary := range summaries {
		require.NotEmpty(t, summary.ExecutionID)
		require.False(t, summary.StartTime.IsZero())
	}
}

func TestListExecutionsOmitsPayloads(t *testing.T) {
	executor := newTestExecutor(t, echoProcessor("payload"))
	executor.Execute(context.Background(), Request{Message: "hi"})

	summaries := executor.ListExecutions()
	require.Len(t, summaries, 1)
	require.Equal(t, StatusCompleted, summaries[0].Status)
	require.NotNil(t, summaries[0].EndTime)
}

// startGateLogger blocks inside the "starting execution" log call, holding
// Execute between record creation and the Running transition.
type startGateLogger struct {
	started chan struct{}
	release chan struct{}
}

func (l *startGateLogger) Debug(msg string, keysAndValues ...any) {}
func (l *startGateLogger) Info(msg string, keysAndValues ...any) {
	if msg == "starting execution" {
		close(l.started)
		<-l.release
	}
}
func (l *startGateLogger) Warn(msg string, keysAndValues ...any)    {}
func (l *startGateLogger) Error(msg string, keysAndValues ...any)   {}
func (l *startGateLogger) With(keysAndValues ...any) slogger.Logger { return l }

func TestCancelBetweenCreateAndRunning(t *testing.T) {
	gate := &startGateLogger{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	var processorCalled bool
	executor, err := NewExecutor(Options{
		Store: NewStore(),
		Processor: processorFunc(func(ctx context.Context, message string) (string, error) {
			processorCalled = true
			return "too late", nil
		}),
		Logger: gate,
	})
	require.NoError(t, err)

	done := make(chan *Result, 1)
	go func() {
		done <- executor.Execute(context.Background(), Request{Message: "hello"})
	}()

	<-gate.started
	records := executor.Store().List()
	require.Len(t, records, 1)
	id := records[0].ID

	cancelResult := executor.Cancel(id)
	require.Equal(t, "cancelled", cancelResult.Status)
	close(gate.release)

	result := <-done
	require.Equal(t, "error", result.Status)
	require.Equal(t, id, result.ExecutionID)
	require.False(t, processorCalled)

	// The cancelled record stays cancelled.
	record, ok := executor.Store().Get(id)
	require.True(t, ok)
	require.Equal(t, StatusCancelled, record.Status)
	require.Nil(t, record.Result)
	require.NotNil(t, record.EndTime)
}
