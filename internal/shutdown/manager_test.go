package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"morse-converter/internal/logger"
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) component(name string) Func {
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.order = append(r.order, name)
	}
}

func TestManager_ShutdownReverseOrder(t *testing.T) {
	rec := &recorder{}
	m := NewManager(logger.NoOpLogger{})
	m.Register(rec.component("first"))
	m.Register(rec.component("second"))
	m.Register(rec.component("third"))

	m.Shutdown()

	assert.Equal(t, []string{"third", "second", "first"}, rec.order)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Done():
	default:
		t.Fatal("Done not closed after Shutdown")
	}
}

func TestManager_ShutdownIsIdempotent(t *testing.T) {
	calls := 0
	m := NewManager(logger.NoOpLogger{})
	m.Register(Func(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
}

func TestManager_ComponentTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	ran := false
	m := NewManager(logger.NoOpLogger{})
	m.SetTimeout(20 * time.Millisecond)
	m.Register(Func(func() { ran = true }))
	m.Register(Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()

	assert.True(t, ran)
	assert.Less(t, time.Since(start), time.Second)
}

func TestManager_StopDetachesListener(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	m.Listen()
	m.Stop()
	m.Stop()

	select {
	case <-m.Done():
		t.Fatal("Stop must not trigger shutdown")
	default:
	}
}
