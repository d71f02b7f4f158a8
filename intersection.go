package crdesc

import (
	"github.com/paulmach/orb"
)

// Intersection is the whole model. Once built it is treated as read-only.
type Intersection struct {
	Center   orb.Point
	Branches []*Branch

	junctions     map[string]*Junction
	junctionOrder []string
	ways          map[string]*Way
	wayOrder      []string
}

// NewIntersection creates intersection. Junctions and ways keep given order.
func NewIntersection(center orb.Point, branches []*Branch, junctions []*Junction, ways []*Way) *Intersection {
	intersection := &Intersection{
		Center:        center,
		Branches:      branches,
		junctions:     make(map[string]*Junction, len(junctions)),
		junctionOrder: make([]string, 0, len(junctions)),
		ways:          make(map[string]*Way, len(ways)),
		wayOrder:      make([]string, 0, len(ways)),
	}
	for _, junction := range junctions {
		if _, ok := intersection.junctions[junction.ID]; !ok {
			intersection.junctionOrder = append(intersection.junctionOrder, junction.ID)
		}
		intersection.junctions[junction.ID] = junction
	}
	for _, way := range ways {
		if _, ok := intersection.ways[way.ID]; !ok {
			intersection.wayOrder = append(intersection.wayOrder, way.ID)
		}
		intersection.ways[way.ID] = way
	}
	return intersection
}

// Junction returns junction by its ID
func (intersection *Intersection) Junction(id string) (*Junction, bool) {
	junction, ok := intersection.junctions[id]
	return junction, ok
}

// Way returns way by its ID
func (intersection *Intersection) Way(id string) (*Way, bool) {
	way, ok := intersection.ways[id]
	return way, ok
}

// Junctions returns all junctions in model order
func (intersection *Intersection) Junctions() []*Junction {
	ans := make([]*Junction, len(intersection.junctionOrder))
	for i, id := range intersection.junctionOrder {
		ans[i] = intersection.junctions[id]
	}
	return ans
}

// Ways returns all ways (including those not tied to any branch) in model order
func (intersection *Intersection) Ways() []*Way {
	ans := make([]*Way, len(intersection.wayOrder))
	for i, id := range intersection.wayOrder {
		ans[i] = intersection.ways[id]
	}
	return ans
}

// Crosswalks returns every junction having crosswalk capability
func (intersection *Intersection) Crosswalks() []*Junction {
	ans := []*Junction{}
	for _, id := range intersection.junctionOrder {
		if junction := intersection.junctions[id]; junction.Has(CAPABILITY_CROSSWALK) {
			ans = append(ans, junction)
		}
	}
	return ans
}

// Crossings returns crossing of each branch in branch order. Element is nil for branches which can't be crossed.
func (intersection *Intersection) Crossings() []*Crossing {
	ans := make([]*Crossing, len(intersection.Branches))
	for i, branch := range intersection.Branches {
		ans[i] = branch.Crossing
	}
	return ans
}
