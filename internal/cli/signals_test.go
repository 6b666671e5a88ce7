package cli

import (
	"context"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignalHandler_RunsCallbacksInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewSignalHandler(cancel)

	var order []int
	h.OnShutdown(func() { order = append(order, 1) })
	h.OnShutdown(func() { order = append(order, 2) })

	h.StartWithNotify(false)
	h.Trigger(syscall.SIGTERM)
	h.Wait()

	assert.Equal(t, []int{1, 2}, order)

	select {
	case <-ctx.Done():
	default:
		t.Error("expected context to be canceled")
	}
}

func TestSignalHandler_StopRetiresWithoutCallbacks(t *testing.T) {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewSignalHandler(cancel)

	var fired atomic.Bool
	h.OnShutdown(func() { fired.Store(true) })

	h.StartWithNotify(false)
	h.Stop()
	h.Wait()

	// Give a straggling goroutine a moment to misbehave
	time.Sleep(10 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestSignalHandler_StopIsIdempotent(t *testing.T) {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewSignalHandler(cancel)

	h.StartWithNotify(false)
	h.Stop()
	h.Stop()
}
