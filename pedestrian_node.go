package crdesc

type PedestrianNodeKind uint16

const (
	PEDESTRIAN_NODE_ISLAND = PedestrianNodeKind(iota + 1)
	PEDESTRIAN_NODE_SIDEWALK
)

func (iotaIdx PedestrianNodeKind) String() string {
	return [...]string{"Island", "Sidewalk"}[iotaIdx-1]
}

var (
	pedestrianNodeKinds = map[string]PedestrianNodeKind{
		"Island":   PEDESTRIAN_NODE_ISLAND,
		"Sidewalk": PEDESTRIAN_NODE_SIDEWALK,
	}
)

// PedestrianNode is either a refuge island between crossing stages or a sidewalk
type PedestrianNode struct {
	ID   string
	Kind PedestrianNodeKind
}
