package gameplay

import (
	"context"
	"log/slog"
	"time"

	"starship/pkg/game/config"
	"starship/pkg/game/state"
)

// maxCatchUpSteps bounds how many fixed steps one tick may run.
const maxCatchUpSteps = 10

// Loop turns wall-clock frame times into simulation steps and reports the
// frame rate.
//
// By default each tick is one step of the elapsed time, so the simulation
// follows the frame rate. With a fixed step configured, elapsed time is
// accumulated and spent in whole steps.
type Loop struct {
	Game *state.Game

	cfg config.Loop
	log *slog.Logger

	accumulator int

	frames      int
	sinceReport int
	fps         float64
}

// NewLoop creates a loop using the game's loop settings.
func NewLoop(g *state.Game, log *slog.Logger) *Loop {
	if log == nil {
		log = slog.Default()
	}
	return &Loop{
		Game: g,
		cfg:  g.Config.Loop,
		log:  log.With("component", "loop"),
	}
}

// FrameDuration is the target time between ticks.
func (l *Loop) FrameDuration() time.Duration {
	if l.cfg.MaxFramerate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(l.cfg.MaxFramerate)
}

// FPS returns the frame rate measured over the last report interval.
func (l *Loop) FPS() float64 {
	return l.fps
}

// Tick advances the simulation by dt milliseconds of wall-clock time and
// returns everything that changed.
func (l *Loop) Tick(dt int) Frame {
	l.measure(dt)

	step := l.cfg.FixedStepMs
	if step <= 0 {
		return Step(l.Game, dt)
	}

	l.accumulator = min(l.accumulator+dt, step*maxCatchUpSteps)
	if l.accumulator < step {
		// Intents still apply without waiting for a whole step.
		return Step(l.Game, 0)
	}

	var f Frame
	for l.accumulator >= step {
		f = f.Merge(Step(l.Game, step))
		l.accumulator -= step
	}
	return f
}

// RunFor ticks the simulation for ms milliseconds of simulated time at the
// configured frame rate without waiting, and returns the merged changes.
func (l *Loop) RunFor(ms int) Frame {
	frame := int(l.FrameDuration() / time.Millisecond)
	var f Frame
	for elapsed := 0; elapsed < ms && !l.Game.Quit; elapsed += frame {
		f = f.Merge(l.Tick(min(frame, ms-elapsed)))
	}
	return f
}

// Run ticks in real time until ctx is done, the game quits or draw fails.
func (l *Loop) Run(ctx context.Context, draw func(Frame) error) error {
	ticker := time.NewTicker(l.FrameDuration())
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := int(now.Sub(last).Milliseconds())
			last = now

			if err := draw(l.Tick(dt)); err != nil {
				return err
			}
			if l.Game.Quit {
				return nil
			}
		}
	}
}

func (l *Loop) measure(dt int) {
	l.frames++
	l.sinceReport += dt
	if l.cfg.FramerateReportMs <= 0 || l.sinceReport < l.cfg.FramerateReportMs {
		return
	}
	l.fps = float64(l.frames) * 1000 / float64(l.sinceReport)
	l.log.Info("frame rate",
		"fps", l.fps,
		"frames", l.frames,
		"elapsed_ms", l.Game.ElapsedMs,
		"paused", l.Game.Paused,
	)
	l.frames = 0
	l.sinceReport = 0
}
