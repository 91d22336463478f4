package pathfinding

import (
	"github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/core"
	"golang.org/x/sync/errgroup"
)

type input struct {
	move   config.Move
	sprint bool
}

type neighbour struct {
	input
	state core.PhysState
}

// expander produces the successors of a state in a fixed input order.
type expander struct {
	stepper *core.Stepper
	inputs  []input
	workers int
}

func newExpander(stepper *core.Stepper, settings config.SearchSettings) *expander {
	skipVerticalSprint := !settings.AlwaysSprint && !settings.Physics.SprintVertical

	var inputs []input
	for _, m := range settings.Moves() {
		for _, sprint := range settings.SprintVariants() {
			if skipVerticalSprint && sprint && m.OnlyVertical() {
				continue
			}
			inputs = append(inputs, input{m, sprint})
		}
	}
	return &expander{stepper: stepper, inputs: inputs, workers: settings.Workers}
}

// expand steps st under every input. With more than one worker the steps
// run concurrently, but the result order never changes.
func (e *expander) expand(st core.PhysState) []neighbour {
	out := make([]neighbour, len(e.inputs))

	if e.workers <= 1 {
		for i, in := range e.inputs {
			out[i] = neighbour{in, e.stepper.Step(st, in.move, in.sprint)}
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, in := range e.inputs {
		g.Go(func() error {
			out[i] = neighbour{in, e.stepper.Step(st, in.move, in.sprint)}
			return nil
		})
	}
	// Steps never fail.
	_ = g.Wait()
	return out
}
