package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/fansel/domburg-sub000/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_RunsSyncAndDispatch(t *testing.T) {
	sync := mocks.NewMockSyncRunner(t)
	conflicts := mocks.NewMockConflictDispatcher(t)
	log := newTestLogger(t)

	s := New(sync, conflicts, 50*time.Millisecond, log)

	sync.EXPECT().Reconcile(mock.Anything, "scheduler").Return(&domain.SyncReport{Created: 1}, nil)
	conflicts.EXPECT().DispatchNotifications(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sync.Calls), 1)
	assert.GreaterOrEqual(t, len(conflicts.Calls), 1)
}

func TestScheduler_Tick_SyncErrorSkipsDispatch(t *testing.T) {
	sync := mocks.NewMockSyncRunner(t)
	conflicts := mocks.NewMockConflictDispatcher(t)
	log := newTestLogger(t)

	s := New(sync, conflicts, 50*time.Millisecond, log)

	sync.EXPECT().Reconcile(mock.Anything, "scheduler").Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sync.Calls), 1)
	assert.Empty(t, conflicts.Calls)
}

func TestScheduler_Tick_DispatchErrorIsLogged(t *testing.T) {
	sync := mocks.NewMockSyncRunner(t)
	conflicts := mocks.NewMockConflictDispatcher(t)
	log := newTestLogger(t)

	s := New(sync, conflicts, 50*time.Millisecond, log)

	sync.EXPECT().Reconcile(mock.Anything, "scheduler").Return(&domain.SyncReport{}, nil)
	conflicts.EXPECT().DispatchNotifications(mock.Anything).Return(0, errors.New("telegram down"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(conflicts.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sync := mocks.NewMockSyncRunner(t)
	conflicts := mocks.NewMockConflictDispatcher(t)
	log := newTestLogger(t)

	s := New(sync, conflicts, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	sync := mocks.NewMockSyncRunner(t)
	conflicts := mocks.NewMockConflictDispatcher(t)
	log := newTestLogger(t)

	s := New(sync, conflicts, 30*time.Millisecond, log)

	sync.EXPECT().Reconcile(mock.Anything, "scheduler").Return(&domain.SyncReport{}, nil)
	conflicts.EXPECT().DispatchNotifications(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sync.Calls), 3)
}
