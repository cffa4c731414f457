// Package host bridges the addon to the media-center runtime.
//
// All host interaction is confined to the Bridge interface: builtin command
// execution, JSON-RPC, info-label reads, sleeping and the global abort
// signal. A local in-process implementation backs headless operation and
// tests; a real deployment substitutes a bridge wired to the host's IPC.
package host

import (
	"fmt"
	"sync"
	"time"
)

// Busy is the sentinel the host returns from info-label reads for a short
// window after boot. Callers retry until it clears.
const Busy = "Busy"

// Bridge is the complete surface the addon consumes from the host runtime.
type Bridge interface {
	// ExecuteBuiltin runs a host builtin such as ActivateWindow or RunPlugin.
	ExecuteBuiltin(command string) error

	// JSONRPC issues a host JSON-RPC call and returns the decoded result.
	JSONRPC(method string, params map[string]any) (any, error)

	// InfoLabel reads a host info label. May return Busy shortly after boot.
	InfoLabel(label string) (string, error)

	// Sleep suspends through the host so player events keep firing.
	Sleep(d time.Duration)

	// Aborted reports whether the host signalled shutdown.
	Aborted() bool

	// WaitForAbort blocks until abort or timeout, reporting abort.
	WaitForAbort(timeout time.Duration) bool
}

var (
	bridgeMutex sync.RWMutex
	bridge      Bridge = NewLocalBridge()
)

// Current returns the active bridge.
func Current() Bridge {
	bridgeMutex.RLock()
	defer bridgeMutex.RUnlock()
	return bridge
}

// SetBridge substitutes the active bridge. Passing nil restores the local one.
func SetBridge(b Bridge) {
	bridgeMutex.Lock()
	defer bridgeMutex.Unlock()
	if b == nil {
		b = NewLocalBridge()
	}
	bridge = b
}

// RPCHandler services a JSON-RPC method on the local bridge.
type RPCHandler func(params map[string]any) (any, error)

// LocalBridge is the in-process Bridge used headless and under test. Info
// labels and JSON-RPC methods are backed by registered values and handlers.
type LocalBridge struct {
	mutex    sync.RWMutex
	labels   map[string]string
	handlers map[string]RPCHandler
	builtins []string
	abort    chan struct{}
	aborted  bool
}

// NewLocalBridge returns an empty local bridge.
func NewLocalBridge() *LocalBridge {
	return &LocalBridge{
		labels:   map[string]string{},
		handlers: map[string]RPCHandler{},
		abort:    make(chan struct{}),
	}
}

// SetInfoLabel registers an info-label value.
func (b *LocalBridge) SetInfoLabel(label, value string) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.labels[label] = value
}

// HandleRPC registers a JSON-RPC method handler.
func (b *LocalBridge) HandleRPC(method string, handler RPCHandler) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.handlers[method] = handler
}

// Builtins returns every builtin executed so far, oldest first.
func (b *LocalBridge) Builtins() []string {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return append([]string(nil), b.builtins...)
}

// Abort raises the global abort signal. Idempotent.
func (b *LocalBridge) Abort() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if !b.aborted {
		b.aborted = true
		close(b.abort)
	}
}

func (b *LocalBridge) ExecuteBuiltin(command string) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.builtins = append(b.builtins, command)
	return nil
}

func (b *LocalBridge) JSONRPC(method string, params map[string]any) (any, error) {
	b.mutex.RLock()
	handler, ok := b.handlers[method]
	b.mutex.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unhandled json-rpc method %q", method)
	}
	return handler(params)
}

func (b *LocalBridge) InfoLabel(label string) (string, error) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.labels[label], nil
}

func (b *LocalBridge) Sleep(d time.Duration) {
	select {
	case <-b.abort:
	case <-time.After(d):
	}
}

func (b *LocalBridge) Aborted() bool {
	select {
	case <-b.abort:
		return true
	default:
		return false
	}
}

func (b *LocalBridge) WaitForAbort(timeout time.Duration) bool {
	select {
	case <-b.abort:
		return true
	case <-time.After(timeout):
		return false
	}
}
