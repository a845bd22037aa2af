package usecase_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	registryoutadapter "studytrack/internal/modules/registry/adapter/out"
	registrydomain "studytrack/internal/modules/registry/domain"
	registryservice "studytrack/internal/modules/registry/service"
	sessionoutadapter "studytrack/internal/modules/session/adapter/out"
	sessiondto "studytrack/internal/modules/session/dto"
	sessionin "studytrack/internal/modules/session/port/in"
	"studytrack/internal/modules/session/service"
	"studytrack/internal/modules/session/usecase"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/sqlite"
	"studytrack/internal/platform/tx"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

type seqID struct {
	mu sync.Mutex
	n  int
}

func (s *seqID) New() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

type fixture struct {
	db    *sql.DB
	clk   *fakeClock
	uc    sessionin.Usecase
	tasks *registryservice.TaskService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "studytrack.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	clk := &fakeClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
	ids := &seqID{}

	taskStore, err := registryoutadapter.NewSQLiteTaskStore(db)
	if err != nil {
		t.Fatalf("new task store: %v", err)
	}
	ledger, err := sessionoutadapter.NewSQLiteSessionLedger(db)
	if err != nil {
		t.Fatalf("new ledger: %v", err)
	}
	activeStore, err := sessionoutadapter.NewSQLiteActiveSessionStore(db)
	if err != nil {
		t.Fatalf("new active store: %v", err)
	}
	svc := service.NewSessionService(clk, ids, ledger, sessionoutadapter.NewSQLiteTaskStateStore(db), activeStore)

	return &fixture{
		db:    db,
		clk:   clk,
		uc:    usecase.NewInteractor(svc, tx.NewSQLManager(db)),
		tasks: registryservice.NewTaskService(clk, ids, taskStore),
	}
}

func (f *fixture) addTask(t *testing.T, ownerID, name string) string {
	t.Helper()
	task, err := f.tasks.Add(context.Background(), ownerID, name, "Maths", 60)
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	return task.ID
}

func (f *fixture) openSessionCount(t *testing.T, ownerID string) int {
	t.Helper()
	var count int
	err := f.db.QueryRow(`SELECT COUNT(1) FROM task_sessions WHERE user_id = ? AND ended_at IS NULL`, ownerID).Scan(&count)
	if err != nil {
		t.Fatalf("count open sessions: %v", err)
	}
	return count
}

func (f *fixture) markerTask(t *testing.T, ownerID string) (string, bool) {
	t.Helper()
	var taskID string
	err := f.db.QueryRow(`SELECT active_task_id FROM active_sessions WHERE user_id = ?`, ownerID).Scan(&taskID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		t.Fatalf("read marker: %v", err)
	}
	return taskID, true
}

func (f *fixture) taskStatus(t *testing.T, taskID string) registrydomain.Status {
	t.Helper()
	var status string
	if err := f.db.QueryRow(`SELECT status FROM tasks WHERE id = ?`, taskID).Scan(&status); err != nil {
		t.Fatalf("read task status: %v", err)
	}
	parsed, err := registrydomain.ParseStatus(status)
	if err != nil {
		t.Fatalf("stored status invalid: %v", err)
	}
	return parsed
}

func TestStartAutoClosesPreviousSession(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	taskA := f.addTask(t, "owner-1", "Integrals")
	taskB := f.addTask(t, "owner-1", "Optics")

	first, err := f.uc.Start(ctx, sessiondto.StartInput{OwnerID: "owner-1", TaskID: taskA})
	if err != nil {
		t.Fatalf("start first session: %v", err)
	}
	if first.PreviousSessionEnded {
		t.Fatalf("no session existed, auto-close must report false")
	}

	f.clk.Advance(45 * time.Minute)
	second, err := f.uc.Start(ctx, sessiondto.StartInput{OwnerID: "owner-1", TaskID: taskB})
	if err != nil {
		t.Fatalf("start second session: %v", err)
	}
	if !second.PreviousSessionEnded {
		t.Fatalf("auto-close of the first session must be reported")
	}
	if got := f.openSessionCount(t, "owner-1"); got != 1 {
		t.Fatalf("exactly one open session per owner, found %d", got)
	}

	var duration int
	if err := f.db.QueryRow(`SELECT duration_minutes FROM task_sessions WHERE id = ?`, first.SessionID).Scan(&duration); err != nil {
		t.Fatalf("read closed duration: %v", err)
	}
	if duration != 45 {
		t.Fatalf("auto-closed duration should be 45 minutes, got %d", duration)
	}
	if taskID, ok := f.markerTask(t, "owner-1"); !ok || taskID != taskB {
		t.Fatalf("marker should point at the new task, got %q (present=%t)", taskID, ok)
	}
	if got := f.taskStatus(t, taskA); got != registrydomain.StatusPaused {
		t.Fatalf("previous task should be paused, got %s", got)
	}
	if got := f.taskStatus(t, taskB); got != registrydomain.StatusInProgress {
		t.Fatalf("target task should be in progress, got %s", got)
	}
}

func TestStartChecksOwnershipAndCompletion(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	task := f.addTask(t, "owner-1", "Integrals")

	if _, err := f.uc.Start(ctx, sessiondto.StartInput{OwnerID: "owner-2", TaskID: task}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("foreign task must look missing, got %v", err)
	}
	if _, err := f.uc.Start(ctx, sessiondto.StartInput{OwnerID: "owner-1", TaskID: "missing"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("unknown task must be not found, got %v", err)
	}

	if err := f.uc.Complete(ctx, sessiondto.CompleteInput{OwnerID: "owner-1", TaskID: task}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := f.uc.Start(ctx, sessiondto.StartInput{OwnerID: "owner-1", TaskID: task}); !errors.Is(err, apperrors.ErrTaskCompleted) {
		t.Fatalf("completed task cannot be restarted, got %v", err)
	}
}

func TestStopClosesSessionAndIsRepeatable(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	task := f.addTask(t, "owner-1", "Integrals")

	started, err := f.uc.Start(ctx, sessiondto.StartInput{OwnerID: "owner-1", TaskID: task})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	f.clk.Advance(25 * time.Minute)

	stopped, err := f.uc.Stop(ctx, sessiondto.StopInput{OwnerID: "owner-1", SessionID: started.SessionID})
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if stopped.DurationMin != 25 {
		t.Fatalf("expected 25 minutes, got %d", stopped.DurationMin)
	}
	if got := f.taskStatus(t, task); got != registrydomain.StatusPaused {
		t.Fatalf("stopped task should be paused, got %s", got)
	}
	if _, ok := f.markerTask(t, "owner-1"); ok {
		t.Fatalf("marker must be deleted on stop")
	}

	// Second stop: marker deletion is delete-if-exists, ledger stays as closed.
	f.clk.Advance(10 * time.Minute)
	again, err := f.uc.Stop(ctx, sessiondto.StopInput{OwnerID: "owner-1", SessionID: started.SessionID})
	if err != nil {
		t.Fatalf("second stop must not error: %v", err)
	}
	if again.DurationMin != 25 {
		t.Fatalf("closed session keeps its stored duration, got %d", again.DurationMin)
	}
}

func TestStopRejectsForeignAndUnknownSessions(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	task := f.addTask(t, "owner-1", "Integrals")

	started, err := f.uc.Start(ctx, sessiondto.StartInput{OwnerID: "owner-1", TaskID: task})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.uc.Stop(ctx, sessiondto.StopInput{OwnerID: "owner-2", SessionID: started.SessionID}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("foreign session must look missing, got %v", err)
	}
	if _, err := f.uc.Stop(ctx, sessiondto.StopInput{OwnerID: "owner-1", SessionID: "missing"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("unknown session must be not found, got %v", err)
	}
	if got := f.openSessionCount(t, "owner-1"); got != 1 {
		t.Fatalf("rejected stops must not touch the ledger, open count %d", got)
	}
}

func TestCompleteClosesOpenSessionAndIsIdempotent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	task := f.addTask(t, "owner-1", "Integrals")

	if _, err := f.uc.Start(ctx, sessiondto.StartInput{OwnerID: "owner-1", TaskID: task}); err != nil {
		t.Fatalf("start: %v", err)
	}
	f.clk.Advance(30 * time.Minute)

	if err := f.uc.Complete(ctx, sessiondto.CompleteInput{OwnerID: "owner-1", TaskID: task}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got := f.openSessionCount(t, "owner-1"); got != 0 {
		t.Fatalf("complete must close the open session, open count %d", got)
	}
	if got := f.taskStatus(t, task); got != registrydomain.StatusCompletedOntime {
		t.Fatalf("task should be completed on time, got %s", got)
	}
	if _, ok := f.markerTask(t, "owner-1"); ok {
		t.Fatalf("marker must be deleted on completion")
	}

	if err := f.uc.Complete(ctx, sessiondto.CompleteInput{OwnerID: "owner-1", TaskID: task}); err != nil {
		t.Fatalf("second complete must be a no-op, got %v", err)
	}
	if got := f.taskStatus(t, task); got != registrydomain.StatusCompletedOntime {
		t.Fatalf("status must stay completed, got %s", got)
	}
}

func TestOwnersAreIndependent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	taskA := f.addTask(t, "owner-1", "Integrals")
	taskB := f.addTask(t, "owner-2", "Optics")

	if _, err := f.uc.Start(ctx, sessiondto.StartInput{OwnerID: "owner-1", TaskID: taskA}); err != nil {
		t.Fatalf("start owner-1: %v", err)
	}
	started, err := f.uc.Start(ctx, sessiondto.StartInput{OwnerID: "owner-2", TaskID: taskB})
	if err != nil {
		t.Fatalf("start owner-2: %v", err)
	}
	if started.PreviousSessionEnded {
		t.Fatalf("owners must not auto-close each other's sessions")
	}
	if f.openSessionCount(t, "owner-1") != 1 || f.openSessionCount(t, "owner-2") != 1 {
		t.Fatalf("each owner keeps exactly one open session")
	}
}

func TestConcurrentStartsLeaveOneOpenSession(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	tasks := make([]string, 5)
	for i := range tasks {
		tasks[i] = f.addTask(t, "owner-1", fmt.Sprintf("Task %d", i))
	}

	var wg sync.WaitGroup
	for _, taskID := range tasks {
		wg.Add(1)
		go func(taskID string) {
			defer wg.Done()
			// The store's busy timeout serializes the writers; last
			// committed start wins.
			_, _ = f.uc.Start(ctx, sessiondto.StartInput{OwnerID: "owner-1", TaskID: taskID})
		}(taskID)
	}
	wg.Wait()

	if got := f.openSessionCount(t, "owner-1"); got != 1 {
		t.Fatalf("double-clicks must never leave more than one open session, found %d", got)
	}
	markerTask, ok := f.markerTask(t, "owner-1")
	if !ok {
		t.Fatalf("an open session implies a marker")
	}
	var openTask string
	if err := f.db.QueryRow(`SELECT task_id FROM task_sessions WHERE user_id = ? AND ended_at IS NULL`, "owner-1").Scan(&openTask); err != nil {
		t.Fatalf("read open session: %v", err)
	}
	if markerTask != openTask {
		t.Fatalf("marker (%s) must match the ledger's open row (%s)", markerTask, openTask)
	}
}
