package viewmodels

import (
	"context"
	"sync/atomic"

	"github.com/dmitrijs2005/skillswap/internal/client/client"
	"github.com/dmitrijs2005/skillswap/internal/client/reactive"
	"github.com/dmitrijs2005/skillswap/internal/client/task"
	"github.com/dmitrijs2005/skillswap/internal/logging"
)

// Phase summarizes a view-model as Idle → Loading → {Loaded, Errored}.
// Any new load moves it back to Loading.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseErrored:
		return "errored"
	}
	return "unknown"
}

// base carries what every view-model shares. Its cells are promoted onto
// the embedding view-model.
type base struct {
	api  client.API
	loop *task.Loop
	log  logging.Logger

	started atomic.Bool

	Loading *reactive.Cell[bool]
	// Error holds the last failure message, "" when there is none.
	Error *reactive.Cell[string]
}

func newBase(loop *task.Loop, api client.API, log logging.Logger, view string) *base {
	return &base{
		api:     api,
		loop:    loop,
		log:     log.With("view", view),
		Loading: reactive.NewCell(false),
		Error:   reactive.NewCell(""),
	}
}

// beginLoad must run under the loop lock.
func (b *base) beginLoad() {
	b.started.Store(true)
	b.Loading.Set(true)
	b.Error.Set("")
}

// fail records a request failure. Must run under the loop lock.
func (b *base) fail(msg string, err error, args ...any) {
	b.log.Warn(context.Background(), msg, append(args, "error", err)...)
	b.Error.Set(msg)
}

// reject records a validation failure and returns err.
func (b *base) reject(err error) error {
	b.Error.Set(err.Error())
	return err
}

func (b *base) Phase() Phase {
	switch {
	case b.Loading.Get():
		return PhaseLoading
	case b.Error.Get() != "":
		return PhaseErrored
	case b.started.Load():
		return PhaseLoaded
	}
	return PhaseIdle
}
