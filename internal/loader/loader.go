// Package loader resolves which record the card shows and mirrors it into the
// navigation history.
//
// Fetching happens in a Task, off the UI loop. The Task's Outcome is handed
// back to Apply on the loop, which is the only place the view and history are
// mutated. Failures never escape Apply: they are logged and turned into the
// card's terminal message.
package loader

import (
	"context"

	"go.uber.org/zap"

	"github.com/jask/swipedeck/internal/card"
	"github.com/jask/swipedeck/internal/nav"
	"github.com/jask/swipedeck/internal/record"
)

// Kind says which entry point produced an outcome.
type Kind int

const (
	Initial Kind = iota
	Next
)

func (k Kind) String() string {
	if k == Initial {
		return "initial"
	}
	return "next"
}

// Outcome is the result of one Task.
type Outcome struct {
	Gen      uint64
	Kind     Kind
	Record   record.Record
	Replace  bool
	FellBack bool
	Err      error
}

// Task performs a load's network work. It is safe to run on any goroutine.
type Task func() Outcome

// Options tune a Loader.
type Options struct {
	// CancelStale cancels an in-flight load when a newer one starts and drops
	// outcomes that are not from the newest load.
	CancelStale bool
	// Resolve maps a record's image reference to what the card displays.
	Resolve func(string) string
}

// Loader is the card loader. All methods must be called from the UI loop.
type Loader struct {
	fetcher record.Fetcher
	history nav.History
	view    *card.View
	log     *zap.Logger
	opts    Options
	gen     uint64
	applied uint64
	cancel  context.CancelFunc
}

// New wires a Loader.
func New(f record.Fetcher, h nav.History, v *card.View, log *zap.Logger, opts Options) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Resolve == nil {
		opts.Resolve = func(s string) string { return s }
	}
	return &Loader{fetcher: f, history: h, view: v, log: log, opts: opts}
}

func (l *Loader) begin(ctx context.Context) (context.Context, context.CancelFunc, uint64) {
	l.gen++
	if l.opts.CancelStale && l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	return ctx, cancel, l.gen
}

// Latest is the generation of the most recently started load.
func (l *Loader) Latest() uint64 { return l.gen }

// Pending reports whether the most recently started load has not been applied
// yet. The card must not start an outcome while a load is pending, or the load
// would land mid-animation.
func (l *Loader) Pending() bool { return l.applied < l.gen }

// LoadInitial reads the record id from the current location. With an id the
// task fetches that record; without one, or if that fetch fails, it fetches
// the next record. Either way the resulting history entry is replaced, so a
// deep link or a failed lookup never adds an entry.
func (l *Loader) LoadInitial(ctx context.Context) Task {
	id, ok := nav.IDFrom(l.history.Location())
	ctx, cancel, gen := l.begin(ctx)
	log := l.log
	fetcher := l.fetcher
	return func() Outcome {
		defer cancel()
		out := Outcome{Gen: gen, Kind: Initial, Replace: true}
		if ok {
			rec, err := fetcher.FetchByID(ctx, id)
			if err == nil {
				out.Record = rec
				return out
			}
			log.Warn("could not load requested record, falling back to next",
				zap.String("id", id), zap.Error(err))
			out.FellBack = true
		}
		out.Record, out.Err = fetcher.FetchNext(ctx)
		return out
	}
}

// LoadNext fetches an arbitrary next record. On success the history entry is
// pushed, or replaced when replace is set.
func (l *Loader) LoadNext(ctx context.Context, replace bool) Task {
	ctx, cancel, gen := l.begin(ctx)
	fetcher := l.fetcher
	return func() Outcome {
		defer cancel()
		rec, err := fetcher.FetchNext(ctx)
		return Outcome{Gen: gen, Kind: Next, Record: rec, Replace: replace, Err: err}
	}
}

// Apply publishes an outcome: render and exactly one history mutation on
// success, the terminal message and no history mutation on failure. It
// reports whether a record was rendered.
func (l *Loader) Apply(o Outcome) bool {
	if l.opts.CancelStale && o.Gen != l.gen {
		l.log.Debug("dropping stale load", zap.Uint64("gen", o.Gen), zap.Uint64("latest", l.gen))
		return false
	}
	if o.Gen > l.applied {
		l.applied = o.Gen
	}
	if o.Err != nil {
		l.log.Error("record unavailable", zap.Stringer("kind", o.Kind), zap.Error(o.Err))
		l.view.ShowTerminal()
		return false
	}

	l.view.Render(o.Record, l.opts.Resolve(o.Record.URL))
	u := nav.WithID(l.history.Location(), o.Record.ID)
	if o.Replace {
		l.history.Replace(u)
	} else {
		l.history.Push(u)
	}
	l.log.Debug("record shown", zap.String("id", o.Record.ID), zap.Bool("replace", o.Replace))
	return true
}

// Stop cancels any in-flight load.
func (l *Loader) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
}
