// Package dijkstra finds cheapest paths over a core.Graph with Dijkstra's
// algorithm, by default measuring an edge by its surprisal so the cheapest
// path is the walk a random walker is most likely to take.
//
// Costs:
//
//   - CostSurprisal (default): edge u→v costs −ln(w(u,v)/Σw(u,·)). Path cost
//     is then −ln of the product of transition probabilities, and
//     Probability(cost) recovers that product.
//   - CostWeight: edge u→v costs its raw weight.
//
// Zero-weight edges carry no probability and are never traversed in either
// mode.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy decrease-key min-heap.
//   - Space: O(V + E).
//
// Errors:
//
//   - ErrNilGraph        nil graph
//   - ErrNoSource        Source option missing
//   - ErrVertexNotFound  source or target absent
//   - ErrNoPath          target unreachable (MostLikelyPath)
package dijkstra
