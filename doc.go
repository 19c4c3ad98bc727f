// Package beecolor colors the vertices of undirected graphs with an
// Artificial Bee Colony (ABC) metaheuristic.
//
// The colony does not prove optimality: the number of distinct colors it
// settles on is an upper bound on the chromatic number, and several seeded
// runs usually tighten it.
//
// Under the hood, everything is organized under these subpackages:
//
//	abc/       — the colony: options, palette, nectar allocation, engine, Verify
//	core/      — thread-safe undirected simple Graph the colony reads from
//	builder/   — deterministic graph generators (cycle, complete, grid, G(n,p)…)
//	matrix/    — Matrix Market (.mtx) loader and sparse → graph export
//	trials/    — best-of-N seeded runs in parallel
//	internal/  — YAML config, Prometheus metrics, file watching for the CLI
//	cmd/beecolor — the command-line front end
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	g := core.NewGraph()
//	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
//	    g.AddEdge(e[0], e[1])
//	}
//	res, _ := abc.Solve(ctx, g, abc.WithEmployedBees(2), abc.WithOnlookerBees(4))
//	fmt.Println("Chromatic Number:", res.ChromaticNumber) // 2 or 3
//
// See the examples/ directory for end-to-end scenarios.
package beecolor
