package sim

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/milk9111/flapper/ecs"
	"github.com/milk9111/flapper/ecs/component"
	"github.com/milk9111/flapper/ecs/system"
	"github.com/milk9111/flapper/scene"
	"github.com/milk9111/flapper/session"
)

type Options struct {
	Ticks int
	// Every samples one row per Every ticks; the last tick is always kept.
	Every int
}

type Sample struct {
	Tick      int
	Position  component.Vec2
	Velocity  component.Vec2
	State     component.BirdState
	Direction component.Direction
	Frame     int
	FlipX     bool
}

type Result struct {
	Samples []Sample
	Ticks   int
	// Ended reports whether the keys ended the run before Ticks.
	Ended bool
	Board session.Scoreboard
}

type scriptErrer interface {
	Err() error
}

// Run plays one headless run: start, Ticks fixed steps with keys, then end
// the run if the keys did not, so the score is always recorded.
func Run(cfg scene.Config, keys system.KeySource, opts Options) (*Result, error) {
	if opts.Ticks <= 0 {
		return nil, fmt.Errorf("sim: ticks must be > 0, got %d", opts.Ticks)
	}
	if opts.Every <= 0 {
		opts.Every = 1
	}

	d, err := scene.NewDirector(cfg, keys)
	if err != nil {
		return nil, err
	}
	if err := d.StartGame(); err != nil {
		return nil, err
	}

	res := &Result{}
	for tick := 0; tick < opts.Ticks; tick++ {
		if err := d.Tick(); err != nil {
			if errors.Is(err, scene.ErrQuit) {
				break
			}
			return nil, err
		}
		if se, ok := keys.(scriptErrer); ok && se.Err() != nil {
			return nil, se.Err()
		}
		res.Ticks = tick + 1

		// The run ended inside this tick; the player is already gone.
		if d.Mode() != session.ModePlaying {
			res.Ended = true
			break
		}
		if tick%opts.Every != 0 && tick != opts.Ticks-1 {
			continue
		}
		if s, ok := sample(d, tick); ok {
			res.Samples = append(res.Samples, s)
		}
	}

	if d.Mode() == session.ModePlaying {
		if err := d.EndGame(); err != nil {
			return nil, err
		}
	}
	res.Board = d.Scoreboard()
	return res, nil
}

func sample(d *scene.Director, tick int) (Sample, bool) {
	player, ok := d.Player()
	if !ok {
		return Sample{}, false
	}
	w := d.World()
	s := Sample{Tick: tick}
	if kin, ok := ecs.Get(w, player, component.KinematicComponent.Kind()); ok {
		s.Position = kin.Position
		s.Velocity = kin.Velocity
	}
	if bird, ok := ecs.Get(w, player, component.BirdComponent.Kind()); ok {
		s.State = bird.State
		s.Direction = bird.Direction
	}
	if sprite, ok := ecs.Get(w, player, component.SpriteComponent.Kind()); ok {
		s.Frame = sprite.Index
		s.FlipX = sprite.FlipX
	}
	return s, true
}

// Render writes the samples and the final scores as tables.
func (r *Result) Render(out io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Tick", "Pos X", "Pos Y", "Vel X", "Vel Y", "State", "Facing", "Frame"})
	for _, s := range r.Samples {
		t.AppendRow(table.Row{s.Tick, s.Position.X, s.Position.Y, s.Velocity.X, s.Velocity.Y, s.State, s.Direction, s.Frame})
	}
	t.Render()

	summary := table.NewWriter()
	summary.SetOutputMirror(out)
	summary.SetStyle(table.StyleLight)
	summary.AppendHeader(table.Row{"Ticks", "Ended", "Score", "High Score"})
	summary.AppendRow(table.Row{r.Ticks, r.Ended, r.Board.Score, r.Board.HighScore})
	summary.Render()
}
