// Package scenario loads grid pathfinding scenarios from YAML and runs them.
//
// A scenario describes one grid (either by dimensions plus obstacle and cost
// lists, or as an ASCII map in "rows") and any number of named searches over
// it. Each search selects endpoints, connectivity, heuristic and limits, and
// maps one-to-one onto an astar.FindPath call.
//
//	name: demo
//	rows:
//	  - "....."
//	  - ".##.."
//	  - "..9.."
//	searches:
//	  - name: across
//	    start: {x: 0, y: 0}
//	    goal:  {x: 4, y: 2}
//	    diagonals: true
//	    heuristic: diagonal
//
// Rows legend: '#' is an obstacle, '.' a walkable cell with the default cost,
// '1'..'9' a walkable cell with that entry cost. Explicit obstacles and costs
// are applied on top of the rows.
//
// Errors:
//
//   - ErrInvalidScenario: structural problem in the document or the grid it describes.
//   - ErrUnknownSearch:   a search name that the scenario does not define.
//
// Per-search failures (astar.ErrNoPath, astar.ErrExpansionLimit, ...) are
// reported on the Outcome, not by Run itself.
package scenario
