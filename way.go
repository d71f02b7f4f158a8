package crdesc

// Way is a street segment made of lanes with pedestrian infrastructure on its edges
type Way struct {
	ID        string
	Name      string
	Junctions []*Junction
	Channels  []Channel
	// Left and right sidewalks, nil when absent
	Sidewalks [2]*PedestrianNode
	// Left and right islands, nil when absent
	Islands [2]*PedestrianNode
}

// JunctionIDs returns identifiers of way's junctions in order
func (way *Way) JunctionIDs() []string {
	ids := make([]string, len(way.Junctions))
	for i, junction := range way.Junctions {
		ids[i] = junction.ID
	}
	return ids
}

func pedestrianNodeID(node *PedestrianNode) string {
	if node == nil {
		return ""
	}
	return node.ID
}
