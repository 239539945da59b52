package server

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockService struct {
	started atomic.Bool
	stopped atomic.Bool
	startFn func() error
	stopErr error
	done    chan struct{}
	once    sync.Once
	order   *[]string
	mu      *sync.Mutex
	name    string
}

func newMock(name string, order *[]string, mu *sync.Mutex) *mockService {
	return &mockService{done: make(chan struct{}), order: order, mu: mu, name: name}
}

func (m *mockService) Start(ctx context.Context) error {
	m.started.Store(true)
	if m.startFn != nil {
		return m.startFn()
	}
	<-m.done
	return nil
}

func (m *mockService) Stop(ctx context.Context) error {
	m.stopped.Store(true)
	m.once.Do(func() { close(m.done) })
	if m.order != nil {
		m.mu.Lock()
		*m.order = append(*m.order, m.name)
		m.mu.Unlock()
	}
	return m.stopErr
}

func waitStarted(t *testing.T, svcs ...*mockService) {
	t.Helper()
	require.Eventually(t, func() bool {
		for _, s := range svcs {
			if !s.started.Load() {
				return false
			}
		}
		return true
	}, 2*time.Second, 10*time.Millisecond, "services did not start in time")
}

func TestLifecycleStartsAndStopsInReverseOrder(t *testing.T) {
	var order []string
	var mu sync.Mutex
	lc := NewLifecycle(zaptest.NewLogger(t), time.Second)

	svc1 := newMock("svc1", &order, &mu)
	svc2 := newMock("svc2", &order, &mu)
	lc.Add("svc1", svc1)
	lc.Add("svc2", svc2)

	var hookRan atomic.Bool
	lc.OnShutdown("flush", func(context.Context) error {
		hookRan.Store(true)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- lc.Run(ctx) }()

	waitStarted(t, svc1, svc2)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not shut down in time")
	}

	assert.True(t, svc1.stopped.Load())
	assert.True(t, svc2.stopped.Load())
	assert.True(t, hookRan.Load())
	assert.Equal(t, []string{"svc2", "svc1"}, order)
}

func TestLifecycleReturnsServiceFailure(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t), time.Second)

	boom := errors.New("listen failed")
	failing := &mockService{done: make(chan struct{}), startFn: func() error { return boom }}
	healthy := &mockService{done: make(chan struct{})}
	lc.Add("healthy", healthy)
	lc.Add("failing", failing)

	err := lc.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "service failing")
	assert.True(t, healthy.stopped.Load())
}

func TestLifecycleJoinsStopErrors(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t), time.Second)

	stuck := errors.New("stuck")
	svc := &mockService{done: make(chan struct{}), stopErr: stuck}
	lc.Add("svc", svc)
	hookErr := errors.New("flush failed")
	lc.OnShutdown("tracing", func(context.Context) error { return hookErr })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- lc.Run(ctx) }()
	waitStarted(t, svc)
	cancel()

	err := <-done
	assert.ErrorIs(t, err, stuck)
	assert.ErrorIs(t, err, hookErr)
}

func TestLifecycleShutdownContextHasDeadline(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t), 50*time.Millisecond)

	var hadDeadline atomic.Bool
	blocker := make(chan struct{})
	lc.Add("svc", &FuncService{
		StartFn: func(context.Context) error {
			<-blocker
			return nil
		},
		StopFn: func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			hadDeadline.Store(ok)
			close(blocker)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, lc.Run(ctx))
	assert.True(t, hadDeadline.Load())
}

func TestNewLifecycle_DefaultTimeout(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t), 0)
	assert.Equal(t, DefaultShutdownTimeout, lc.timeout)
}

func TestFuncService(t *testing.T) {
	started := false
	stopped := false

	svc := &FuncService{
		StartFn: func(context.Context) error {
			started = true
			return nil
		},
		StopFn: func(context.Context) error {
			stopped = true
			return nil
		},
	}

	assert.NoError(t, svc.Start(context.Background()))
	assert.True(t, started)
	assert.NoError(t, svc.Stop(context.Background()))
	assert.True(t, stopped)

	assert.NoError(t, (&FuncService{StartFn: svc.StartFn}).Stop(context.Background()))
}
