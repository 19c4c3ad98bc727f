package abc

import (
	"fmt"
	"math/rand"
)

// colony holds everything one run mutates: the coloring state, the
// availability pool and the random stream. It is not safe for concurrent use.
type colony struct {
	opts    Options
	graph   *arena
	palette Palette
	state   *State
	rng     *rand.Rand

	pool   []int   // vertices not yet drawn by an employed bee this iteration
	chosen []int   // employed-bee picks of the current iteration
	cands  []Color // scratch copy of state.used for assign
	scouts int
}

func newColony(a *arena, opts Options) *colony {
	return &colony{
		opts:    opts,
		graph:   a,
		palette: NewPalette(opts.PaletteSize),
		state:   newState(len(a.ids)),
		rng:     rngFromSeed(opts.Seed),
		pool:    make([]int, 0, len(a.ids)),
		chosen:  make([]int, 0, opts.EmployedBees),
	}
}

// iterate runs one employed phase followed by one onlooker phase and returns
// the onlooker distribution it used.
func (c *colony) iterate() ([]int, error) {
	c.refillPool()
	if err := c.sendEmployed(); err != nil {
		return nil, err
	}
	return c.sendOnlookers()
}

// refillPool makes every vertex available again.
func (c *colony) refillPool() {
	c.pool = c.pool[:0]
	for v := range c.graph.ids {
		c.pool = append(c.pool, v)
	}
}

// sendEmployed draws EmployedBees vertices without replacement. A vertex whose
// stagnation counter reached ScoutThreshold is handed to a scout and its counter
// reset; any other drawn vertex has its counter incremented.
func (c *colony) sendEmployed() error {
	c.chosen = c.chosen[:0]
	for i := 0; i < c.opts.EmployedBees; i++ {
		if len(c.pool) == 0 {
			return fmt.Errorf("%w: pool empty after %d of %d draws", ErrPoolExhaustion, i, c.opts.EmployedBees)
		}
		k := c.rng.Intn(len(c.pool))
		v := c.pool[k]
		last := len(c.pool) - 1
		c.pool[k] = c.pool[last]
		c.pool = c.pool[:last]
		c.chosen = append(c.chosen, v)

		if c.state.stagnation[v] >= c.opts.ScoutThreshold {
			if err := c.scout(v); err != nil {
				return err
			}
			continue
		}
		c.state.stagnation[v]++
	}
	return nil
}

// sendOnlookers spreads OnlookerBees over the chosen vertices by nectar; a
// vertex with k bees has its first k neighbors recolored, then itself.
func (c *colony) sendOnlookers() ([]int, error) {
	degrees := make([]int, len(c.chosen))
	for i, v := range c.chosen {
		degrees[i] = c.graph.deg[v]
	}
	dist := Distribute(NectarValues(degrees), c.opts.OnlookerBees)

	for i, v := range c.chosen {
		nbrs := c.graph.adj[v]
		k := dist[i]
		if k > len(nbrs) {
			k = len(nbrs)
		}
		for _, nb := range nbrs[:k] {
			if err := c.assign(nb); err != nil {
				return nil, err
			}
		}
		if err := c.assign(v); err != nil {
			return nil, err
		}
	}
	return dist, nil
}

// assign gives v a color no neighbor currently holds: an introduced color
// drawn at random from a shrinking candidate copy, or a freshly minted one
// once every introduced color has been ruled out.
func (c *colony) assign(v int) error {
	c.cands = append(c.cands[:0], c.state.used...)
	for len(c.cands) > 0 {
		k := c.rng.Intn(len(c.cands))
		color := c.cands[k]
		last := len(c.cands) - 1
		c.cands[k] = c.cands[last]
		c.cands = c.cands[:last]

		if c.canColor(v, color) {
			c.state.colors[v] = color
			return nil
		}
	}

	color, err := c.mint()
	if err != nil {
		return err
	}
	c.state.colors[v] = color
	return nil
}

// scout forces a brand-new color onto v without a conflict search and resets
// its stagnation counter.
func (c *colony) scout(v int) error {
	color, err := c.mint()
	if err != nil {
		return err
	}
	c.state.colors[v] = color
	c.state.stagnation[v] = 0
	c.scouts++

	id := c.graph.ids[v]
	c.opts.OnScout(id, color)
	if c.opts.Verbose {
		c.opts.Logger.Info("scout bee activated", "vertex", id, "color", color)
	}
	return nil
}

// mint introduces the next palette color.
func (c *colony) mint() (Color, error) {
	color, err := c.palette.ColorAt(len(c.state.used))
	if err != nil {
		return Uncolored, err
	}
	c.state.used = append(c.state.used, color)
	return color, nil
}

// canColor reports whether no neighbor of v currently holds color.
func (c *colony) canColor(v int, color Color) bool {
	for _, nb := range c.graph.adj[v] {
		if c.state.colors[nb] == color {
			return false
		}
	}
	return true
}

// chosenIDs maps the current employed picks to vertex IDs.
func (c *colony) chosenIDs() []string {
	out := make([]string, len(c.chosen))
	for i, v := range c.chosen {
		out[i] = c.graph.ids[v]
	}
	return out
}
