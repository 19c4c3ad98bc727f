// Package abc colors the vertices of an undirected graph with an Artificial
// Bee Colony (ABC) metaheuristic and reports how many distinct colors the
// final proper coloring uses, an upper bound on the chromatic number.
//
// One iteration of the colony:
//
//  1. Employed bees: EmployedBees vertices are drawn uniformly, without
//     replacement, from the availability pool (all vertices, refilled every
//     iteration). A drawn vertex whose stagnation counter has reached
//     ScoutThreshold is handed to a scout bee, which gives it a brand-new
//     color and resets the counter; otherwise the counter is incremented.
//  2. Onlooker bees: each chosen vertex receives a share of OnlookerBees
//     proportional to its degree ("nectar"). A vertex with k onlookers has its
//     first k neighbors (stable order) recolored, then is recolored itself.
//
// Recoloring reuses an already introduced color picked at random among those
// no neighbor currently holds, and mints the next palette color only when every
// introduced color conflicts. The run stops when every vertex is colored and no
// edge is monochromatic; that check rescans the whole graph because a local
// assignment can be invalidated by a later neighbor recoloring.
//
// Complexity per iteration:
//
//   - Employed phase: O(EmployedBees) draws plus O(V) pool refill.
//   - Onlooker phase: O((OnlookerBees + EmployedBees) · C · Δ) where C is the
//     number of introduced colors and Δ the maximum degree.
//   - Termination check: O(V + E).
//
// There is no iteration bound unless one is configured: WithMaxIterations and
// WithTimeLimit turn an exhausted budget into ErrNotConverged, and a cancelled
// context stops the loop between iterations. Both return the partial Result.
//
// Example:
//
//	res, err := abc.Solve(ctx, g,
//	    abc.WithEmployedBees(2),
//	    abc.WithOnlookerBees(4),
//	    abc.WithSeed(42),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Println("Chromatic Number:", res.ChromaticNumber)
//
// A single run is strictly sequential and owns its random stream, so equal
// seeds on equal graphs give identical colorings. Use package trials to run
// several seeds in parallel.
package abc
