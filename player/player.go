package player

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/weftlang/weft/logger"
	"github.com/weftlang/weft/pattern"
	"github.com/weftlang/weft/rhythm"
	"k8s.io/utils/clock"
)

// Player drives a pattern forward in wall-clock time. On every tick it asks
// the metronome how far the timeline has moved, queries the pattern over
// that span, and hands each event to the handler. The pattern itself stays
// pure; the player is the only place where time actually passes.
type Player[A any] struct {
	pat     pattern.Pattern[A]
	met     *rhythm.Metronome
	clock   clock.WithTicker
	tick    time.Duration
	handler func(pattern.Event[A])

	mu   sync.Mutex
	prev pattern.Time
}

// NewPlayer creates a player for the given pattern. The handler may be nil
// when the caller only wants the events Step returns.
func NewPlayer[A any](cl clock.WithTicker, met *rhythm.Metronome, tick time.Duration, p pattern.Pattern[A], handler func(pattern.Event[A])) *Player[A] {
	return &Player[A]{
		pat:     p,
		met:     met,
		clock:   cl,
		tick:    tick,
		handler: handler,
		prev:    met.CycleAt(cl.Now()),
	}
}

// Step queries the span between the previous step and now and dispatches
// whatever sounds in it. The events are also returned so callers can drive
// the player by hand.
func (pl *Player[A]) Step(now time.Time) []pattern.Event[A] {
	pl.mu.Lock()
	from := pl.prev
	to := pl.met.CycleAt(now)
	pl.prev = to
	pl.mu.Unlock()

	if to.Cmp(from) <= 0 {
		return nil
	}
	evs := pl.pat.Query(pattern.NewArc(from, to))
	if pl.handler != nil {
		for _, e := range evs {
			pl.handler(e)
		}
	}
	return evs
}

// Run processes ticks until the context is cancelled.
func (pl *Player[A]) Run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	log := logger.GetProjectLogger()
	log.Printf("player started at %v", pl.clock.Now())

	t := pl.clock.NewTicker(pl.tick)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("player shutdown")
			return
		case now := <-t.C():
			if evs := pl.Step(now); len(evs) > 0 {
				log.WithFields(logrus.Fields{"events": len(evs)}).Debug("tick")
			}
		}
	}
}
