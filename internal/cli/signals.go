package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SignalHandler turns SIGINT/SIGTERM into a context cancellation followed by
// the registered shutdown callbacks, so an interrupted invocation still
// stops the container before the process dies.
type SignalHandler struct {
	signals    chan os.Signal
	stopCh     chan struct{} // closed by Stop to retire the goroutine
	done       chan struct{} // closed when the goroutine exits
	stopOnce   sync.Once
	cancel     context.CancelFunc
	onShutdown []func()
	mu         sync.Mutex
}

// NewSignalHandler creates a signal handler with the given context cancel
func NewSignalHandler(cancel context.CancelFunc) *SignalHandler {
	return &SignalHandler{
		signals: make(chan os.Signal, 1),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
		cancel:  cancel,
	}
}

// Start begins listening for signals
func (h *SignalHandler) Start() {
	h.StartWithNotify(true)
}

// StartWithNotify begins listening for signals, optionally registering with
// OS signal handling. Pass false in unit tests to avoid global signal state.
func (h *SignalHandler) StartWithNotify(notify bool) {
	if notify {
		signal.Notify(h.signals, syscall.SIGINT, syscall.SIGTERM)
	}

	started := make(chan struct{})
	go func() {
		defer close(h.done)
		close(started)

		select {
		case sig := <-h.signals:
			fmt.Fprintf(os.Stderr, "\nReceived %v, stopping container\n", sig)

			if h.cancel != nil {
				h.cancel()
			}

			// Run callbacks in registration order
			h.mu.Lock()
			callbacks := make([]func(), len(h.onShutdown))
			copy(callbacks, h.onShutdown)
			h.mu.Unlock()

			for _, fn := range callbacks {
				fn()
			}
		case <-h.stopCh:
			return
		}
	}()

	<-started
}

// OnShutdown registers a callback to run when a signal arrives
func (h *SignalHandler) OnShutdown(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onShutdown = append(h.onShutdown, fn)
}

// Trigger delivers a synthetic signal, for tests.
func (h *SignalHandler) Trigger(sig os.Signal) {
	h.signals <- sig
}

// Wait blocks until the handler goroutine has exited.
func (h *SignalHandler) Wait() {
	<-h.done
}

// Stop retires the signal handler without running callbacks
func (h *SignalHandler) Stop() {
	signal.Stop(h.signals)
	h.stopOnce.Do(func() {
		close(h.stopCh)
	})
}
