package pathfinding

import (
	"container/heap"
	"context"
	"errors"
	"log"
	"time"

	"github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/core"
)

// Step is one tick of a plan.
type Step = core.Step

// Result is the outcome of a search. A missing plan is not an error: Found
// is false on exhaustion, timeout and cancellation alike.
type Result struct {
	Steps    []Step
	Found    bool
	TimedOut bool

	Iterations int
	Explored   int // distinct state keys reached
	Elapsed    time.Duration

	// Err is set when the settings cannot drive a search.
	Err error
}

// Ticks is the length of the plan.
func (r *Result) Ticks() int {
	return len(r.Steps)
}

type node struct {
	state  core.PhysState
	key    core.StateKey
	parent int
	move   config.Move
	sprint bool
	ticks  int
}

// Search plans inputs that take initial to within the target precision of
// target on both axes. The search stops at the settings' timeout or when
// ctx is done, checked every CheckInterval iterations.
func Search(ctx context.Context, settings config.SearchSettings, initial, target core.PlayerState, static *core.StaticState) *Result {
	started := time.Now()
	res := &Result{}
	defer func() {
		res.Elapsed = time.Since(started)
		logSummary(res)
	}()

	if err := settings.Validate(); err != nil {
		res.Err = err
		return res
	}

	log.Printf("Running search: mode=%s moves=%v sprint=%v weight=%v precision=%v timeout=%v workers=%d",
		settings.Physics.Mode, settings.Moves(), settings.SprintVariants(),
		settings.HeuristicWeight, settings.TargetPrecision, settings.Timeout, settings.Workers)

	ctx, cancel := context.WithTimeout(ctx, settings.Timeout)
	defer cancel()

	stepper := core.NewStepper(static, nil)
	start := static.DetectModifier(core.NewPhysState(initial, settings.Physics))

	if start.Player.CloseTo(target, settings.TargetPrecision) {
		res.Steps = []Step{}
		res.Found = true
		return res
	}

	if settings.Precheck {
		if _, ok := CoarseRoute(static, start.Player.Center(), target.Center(), config.Search.NavCellSize); !ok {
			log.Printf("No coarse route to target")
			return res
		}
	}

	exp := newExpander(stepper, settings)
	heuristic := func(p core.PlayerState) float64 {
		return target.Center().Sub(p.Center()).Len() * settings.HeuristicWeight
	}

	nodes := []node{{state: start, key: start.Key(), parent: -1}}
	gScore := map[core.StateKey]int{nodes[0].key: 0}
	open := &openSet{}
	heap.Push(open, openItem{cost: heuristic(start.Player), node: 0})

	for open.Len() > 0 {
		item := heap.Pop(open).(openItem)
		cur := nodes[item.node]
		if gScore[cur.key] < cur.ticks {
			continue
		}

		res.Iterations++
		if res.Iterations%settings.CheckInterval == 0 {
			if settings.Verbose {
				log.Printf("Search progress: iter=%d open=%d explored=%d ticks=%d",
					res.Iterations, open.Len(), len(gScore), cur.ticks)
			}
			if ctx.Err() != nil {
				res.TimedOut = errors.Is(ctx.Err(), context.DeadlineExceeded)
				break
			}
		}

		for _, nb := range exp.expand(cur.state) {
			if nb.state.Player.Dead {
				continue
			}

			if nb.state.Player.CloseTo(target, settings.TargetPrecision) {
				res.Steps = reconstruct(nodes, item.node)
				res.Steps = append(res.Steps, Step{Move: nb.move, Sprint: nb.sprint, Player: nb.state.Player})
				res.Found = true
				res.Explored = len(gScore)
				return res
			}

			key := nb.state.Key()
			if old, ok := gScore[key]; ok && cur.ticks+1 >= old {
				continue
			}
			gScore[key] = cur.ticks + 1
			nodes = append(nodes, node{
				state:  nb.state,
				key:    key,
				parent: item.node,
				move:   nb.move,
				sprint: nb.sprint,
				ticks:  cur.ticks + 1,
			})
			heap.Push(open, openItem{
				cost: float64(cur.ticks+1) + heuristic(nb.state.Player),
				node: len(nodes) - 1,
			})
		}
	}

	res.Explored = len(gScore)
	return res
}

// reconstruct returns the steps leading from the root to nodes[i].
func reconstruct(nodes []node, i int) []Step {
	var steps []Step
	for ; nodes[i].parent >= 0; i = nodes[i].parent {
		n := nodes[i]
		steps = append(steps, Step{Move: n.move, Sprint: n.sprint, Player: n.state.Player})
	}
	for l, r := 0, len(steps)-1; l < r; l, r = l+1, r-1 {
		steps[l], steps[r] = steps[r], steps[l]
	}
	return steps
}

func logSummary(res *Result) {
	switch {
	case res.Err != nil:
		log.Printf("Search rejected: %v", res.Err)
	case res.Found:
		log.Printf("Found path: iter=%d ticks=%d explored=%d elapsed=%v",
			res.Iterations, res.Ticks(), res.Explored, res.Elapsed)
	case res.TimedOut:
		log.Printf("Search timed out: iter=%d explored=%d elapsed=%v",
			res.Iterations, res.Explored, res.Elapsed)
	default:
		log.Printf("No path: iter=%d explored=%d elapsed=%v",
			res.Iterations, res.Explored, res.Elapsed)
	}
}
