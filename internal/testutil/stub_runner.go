// Package testutil provides a stub command runner so runtime CLI
// interactions can be exercised without podman or docker installed.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// StubRunner implements container.CommandRunner. Responses are keyed by the
// space-joined argv; Stub queues one-shot responses, StubDefault installs a
// fallback. Every invocation is recorded for assertion.
type StubRunner struct {
	mu       sync.Mutex
	stubs    map[string][]stubResponse
	defaults map[string]stubResponse
	calls    []string
	attached []string
}

type stubResponse struct {
	out string
	err error
}

func NewStubRunner() *StubRunner {
	return &StubRunner{
		stubs:    make(map[string][]stubResponse),
		defaults: make(map[string]stubResponse),
	}
}

// Stub queues a one-shot response for the exact invocation.
func (s *StubRunner) Stub(argv string, out string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs[argv] = append(s.stubs[argv], stubResponse{out: out, err: err})
}

// StubDefault installs a response used whenever no queued one matches.
func (s *StubRunner) StubDefault(argv string, out string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults[argv] = stubResponse{out: out, err: err}
}

func (s *StubRunner) Output(ctx context.Context, argv ...string) (string, error) {
	key := strings.Join(argv, " ")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, key)
	queue := s.stubs[key]
	if len(queue) == 0 {
		if resp, ok := s.defaults[key]; ok {
			return resp.out, resp.err
		}
		return "", fmt.Errorf("unexpected runtime call: %s", key)
	}
	resp := queue[0]
	s.stubs[key] = queue[1:]
	return resp.out, resp.err
}

func (s *StubRunner) Attached(ctx context.Context, argv ...string) error {
	key := strings.Join(argv, " ")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, key)
	s.attached = append(s.attached, key)
	queue := s.stubs[key]
	if len(queue) == 0 {
		if resp, ok := s.defaults[key]; ok {
			return resp.err
		}
		return fmt.Errorf("unexpected runtime call: %s", key)
	}
	resp := queue[0]
	s.stubs[key] = queue[1:]
	return resp.err
}

// Calls returns every recorded invocation, in order.
func (s *StubRunner) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

// AttachedCalls returns the invocations that ran attached to the terminal.
func (s *StubRunner) AttachedCalls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.attached))
	copy(out, s.attached)
	return out
}
