package main

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"github.com/fogleman/ease"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"
	"github.com/weftlang/weft/config"
	"github.com/weftlang/weft/engine/scale"
	"github.com/weftlang/weft/logger"
	"github.com/weftlang/weft/pattern"
	"github.com/weftlang/weft/player"
	"github.com/weftlang/weft/rhythm"
	"k8s.io/utils/clock"
)

// Note is one step of the demo show.
type Note struct {
	Sound    string
	Velocity float64
	Color    colorful.Color
}

func main() {
	// We don't process any CLI flags for now, so just run the demo show
	// with a context.
	ctx := context.Background()
	Run(ctx)
}

// Run starts the engine
func Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	// initialize the logger
	log := logger.GetProjectLogger()

	wg := sync.WaitGroup{}

	// initialize the global config
	log.Info("Initializing config...")
	cfg, err := config.NewEngineConfig()
	if err != nil {
		log.Fatalf("error creating config. err='%v'", err)
	}

	// build the show
	log.Info("Building show pattern...")
	show := buildShow(cfg)

	// anchor the timeline to the wall clock
	log.Info("Starting metronome...")
	met := rhythm.NewMetronome(clock.RealClock{}, cfg.Tempo)

	// play events forever
	log.Info("Playing pattern forever...")
	pl := player.NewPlayer(clock.RealClock{}, met, cfg.TickInterval, show, playNote(log))
	wg.Add(1)
	go pl.Run(ctx, &wg)

	// handle CTRL+C interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	<-quit
	log.Println("shutting down weft")
	cancel()
	wg.Wait()
}

// buildShow layers the demo pattern: a four-step beat with a rest, a sine
// sweep shaped by an easing swell picking each note's velocity at its onset,
// and a color per note that alternates cycle by cycle between the hue wheel
// and the config palette.
func buildShow(cfg config.EngineConfig) pattern.Pattern[Note] {
	kick, snare, hat := "bd", "sn", "hh"
	melody := pattern.FromMaybes([]*string{&kick, &snare, nil, &hat})

	// the sine carries the structure; the swell eases the level in over the
	// first eight cycles
	swell := pattern.Slow(pattern.NewTime(8, 1), pattern.EnvEase(ease.InOutQuad))
	vel := pattern.MulLeft(pattern.Sine, swell)

	withVel := pattern.Lift2Left(func(s string, v float64) Note {
		return Note{Sound: s, Velocity: v}
	}, melody, vel)

	colors := pattern.Append(pattern.ColorWheel, pattern.HexColors(cfg.Palette))
	return pattern.Lift2Left(func(n Note, c colorful.Color) Note {
		n.Color = c
		return n
	}, withVel, colors)
}

// playNote logs each note as it sounds, in lieu of a real synth or DMX rig.
func playNote(log *logrus.Entry) func(pattern.Event[Note]) {
	toMIDI := scale.Clamp(0, 1, 0, 127)
	return func(e pattern.Event[Note]) {
		// ticks can slice an event in two; only the fragment carrying the
		// onset should trigger
		if !e.HasOnset() {
			return
		}
		log.WithFields(logrus.Fields{
			"sound":    e.Value.Sound,
			"velocity": int(toMIDI(e.Value.Velocity)),
			"color":    e.Value.Color.Hex(),
			"part":     e.Part.String(),
		}).Info("note")
	}
}
