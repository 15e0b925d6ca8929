package framecache

import (
	"time"

	"github.com/bft-labs/framecache/internal/app"
)

// State is the lifecycle state of a cache's plugins.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
	StateCrashed
)

func (s State) String() string {
	return app.State(s).String()
}

// EvictReason says why frames left the registry.
type EvictReason string

const (
	EvictRemoved EvictReason = "removed"
	EvictSource  EvictReason = "source"
	EvictImage   EvictReason = "image"
	EvictUnused  EvictReason = "unused"
	EvictAll     EvictReason = "all"
	EvictReload  EvictReason = "reload"
)

// LoadEvent is emitted after every load call that reached the registry,
// including skipped repeats.
type LoadEvent struct {
	Result LoadResult
}

// EvictEvent is emitted when frames are removed.
type EvictEvent struct {
	Reason EvictReason
	// Source is set for source removals and reloads.
	Source string
	// Names lists the removed canonical names. It is nil for EvictAll.
	Names []string
	Count int
}

// StateChangeEvent is emitted on lifecycle transitions.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
	At       time.Time
}

// EventHandler receives cache events. Embed NopEventHandler to implement
// only the methods you need.
type EventHandler interface {
	OnLoad(LoadEvent)
	OnEvict(EvictEvent)
	OnStateChange(StateChangeEvent)
}

// NopEventHandler ignores every event.
type NopEventHandler struct{}

func (NopEventHandler) OnLoad(LoadEvent)               {}
func (NopEventHandler) OnEvict(EvictEvent)             {}
func (NopEventHandler) OnStateChange(StateChangeEvent) {}

// emitter fans events out to the handler and to observing plugins.
type emitter struct {
	handler   EventHandler
	observers []LoadObserver
}

func (e *emitter) load(res LoadResult) {
	ev := LoadEvent{Result: res}
	if e.handler != nil {
		e.handler.OnLoad(ev)
	}
	for _, o := range e.observers {
		o.OnLoad(ev)
	}
}

func (e *emitter) evict(ev EvictEvent) {
	if e.handler != nil && ev.Count > 0 {
		e.handler.OnEvict(ev)
	}
}

func (e *emitter) OnStateChange(previous, current app.State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{
		Previous: State(previous),
		Current:  State(current),
		Reason:   reason,
		At:       time.Now(),
	})
}
