package crdesc

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Capability is something a junction may additionally be (a crosswalk, a traffic light...)
type Capability uint16

const (
	CAPABILITY_CROSSWALK = Capability(iota + 1)
	CAPABILITY_TRAFFIC_LIGHT
	CAPABILITY_PEDESTRIAN_TRAFFIC_LIGHT
)

func (iotaIdx Capability) String() string {
	return [...]string{"Crosswalk", "Traffic_light", "Pedestrian_traffic_light"}[iotaIdx-1]
}

var (
	capabilities = map[string]Capability{
		"Crosswalk":                CAPABILITY_CROSSWALK,
		"Traffic_light":            CAPABILITY_TRAFFIC_LIGHT,
		"Pedestrian_traffic_light": CAPABILITY_PEDESTRIAN_TRAFFIC_LIGHT,
	}
)

// TactilePaving is the state of tactile paving on a crosswalk
type TactilePaving uint16

const (
	TACTILE_PAVING_NO = TactilePaving(iota + 1)
	TACTILE_PAVING_YES
	TACTILE_PAVING_INCORRECT // present but degraded
)

func (iotaIdx TactilePaving) String() string {
	return [...]string{"no", "yes", "incorrect"}[iotaIdx-1]
}

// Present reports whether there is any tactile paving, degraded one included
func (iotaIdx TactilePaving) Present() bool {
	return iotaIdx == TACTILE_PAVING_YES || iotaIdx == TACTILE_PAVING_INCORRECT
}

var (
	tactilePavings = map[string]TactilePaving{
		"no":        TACTILE_PAVING_NO,
		"yes":       TACTILE_PAVING_YES,
		"incorrect": TACTILE_PAVING_INCORRECT,
	}
)

// Crosswalk capability
type Crosswalk struct {
	TactilePaving   TactilePaving
	PedestrianNodes []*PedestrianNode
}

// TrafficLight capability
type TrafficLight struct {
	Phase     string
	Direction string
}

// PedestrianTrafficLight capability
type PedestrianTrafficLight struct {
	Sound bool
}

// Junction is a node of the intersection. It carries a set of capabilities which are queried by presence.
type Junction struct {
	ID    string
	Point orb.Point

	capabilities           map[Capability]struct{}
	crosswalk              *Crosswalk
	trafficLight           *TrafficLight
	pedestrianTrafficLight *PedestrianTrafficLight
}

// NewJunction creates junction without capabilities
func NewJunction(id string, x, y float64) *Junction {
	return &Junction{
		ID:           id,
		Point:        orb.Point{x, y},
		capabilities: make(map[Capability]struct{}),
	}
}

// WithCrosswalk attaches crosswalk capability. Unset tactile paving means there is none.
func (junction *Junction) WithCrosswalk(crosswalk Crosswalk) *Junction {
	if crosswalk.TactilePaving == 0 {
		crosswalk.TactilePaving = TACTILE_PAVING_NO
	}
	junction.crosswalk = &crosswalk
	junction.capabilities[CAPABILITY_CROSSWALK] = struct{}{}
	return junction
}

// WithTrafficLight attaches traffic light capability
func (junction *Junction) WithTrafficLight(trafficLight TrafficLight) *Junction {
	junction.trafficLight = &trafficLight
	junction.capabilities[CAPABILITY_TRAFFIC_LIGHT] = struct{}{}
	return junction
}

// WithPedestrianTrafficLight attaches pedestrian traffic light capability
func (junction *Junction) WithPedestrianTrafficLight(light PedestrianTrafficLight) *Junction {
	junction.pedestrianTrafficLight = &light
	junction.capabilities[CAPABILITY_PEDESTRIAN_TRAFFIC_LIGHT] = struct{}{}
	return junction
}

// Has checks if junction carries given capability
func (junction *Junction) Has(capability Capability) bool {
	_, ok := junction.capabilities[capability]
	return ok
}

// Capabilities returns junction's capabilities in stable order. This is the junction's effective "type".
func (junction *Junction) Capabilities() []Capability {
	ans := make([]Capability, 0, len(junction.capabilities))
	for capability := range junction.capabilities {
		ans = append(ans, capability)
	}
	sort.Slice(ans, func(i, j int) bool {
		return ans[i] < ans[j]
	})
	return ans
}

// Crosswalk returns crosswalk capability if any
func (junction *Junction) Crosswalk() (*Crosswalk, bool) {
	return junction.crosswalk, junction.crosswalk != nil
}

// TrafficLight returns traffic light capability if any
func (junction *Junction) TrafficLight() (*TrafficLight, bool) {
	return junction.trafficLight, junction.trafficLight != nil
}

// PedestrianTrafficLight returns pedestrian traffic light capability if any
func (junction *Junction) PedestrianTrafficLight() (*PedestrianTrafficLight, bool) {
	return junction.pedestrianTrafficLight, junction.pedestrianTrafficLight != nil
}

// OSMNodeID returns OSM identifier of the junction. Junctions built from OpenStreetMap keep node IDs as their IDs.
func (junction *Junction) OSMNodeID() (osm.NodeID, bool) {
	id, err := strconv.ParseInt(junction.ID, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return osm.NodeID(id), true
}

// String returns pretty printed junction
func (junction *Junction) String() string {
	return fmt.Sprintf("Junction '%s' (Lon: %f | Lat: %f)", junction.ID, junction.Point.Lon(), junction.Point.Lat())
}
