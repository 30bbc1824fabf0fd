package element

import "sort"

// DepthGroup holds the elements reported at one tree depth, in original
// response order.
type DepthGroup struct {
	Depth    int
	Elements []Element
}

// GroupByDepth reconstructs the tree ordering from the flat snapshot:
// groups sorted by ascending depth, response order preserved within a
// depth. No parent/child edges are modeled; the agent reports none.
func GroupByDepth(elements []Element) []DepthGroup {
	byDepth := make(map[int][]Element)
	for _, e := range elements {
		byDepth[e.Depth] = append(byDepth[e.Depth], e)
	}

	depths := make([]int, 0, len(byDepth))
	for d := range byDepth {
		depths = append(depths, d)
	}
	sort.Ints(depths)

	groups := make([]DepthGroup, 0, len(depths))
	for _, d := range depths {
		groups = append(groups, DepthGroup{Depth: d, Elements: byDepth[d]})
	}
	return groups
}
