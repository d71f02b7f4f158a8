package crdesc

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

var (
	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names instead of Go ones
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RawDescription is the model payload as it is stored on disk
type RawDescription struct {
	PedestrianNodes OrderedMap[RawPedestrianNode] `json:"pedestrian_nodes"`
	Junctions       OrderedMap[RawJunction]       `json:"junctions"`
	Ways            OrderedMap[RawWay]            `json:"ways"`
	Branches        OrderedMap[RawBranch]         `json:"branches"`
	// Center is optional: centroid of junctions is used when it is missing
	Center *RawPoint `json:"center"`
}

// UnmarshalJSON decodes collections one by one, so a malformed member is reported with its collection and id
func (raw *RawDescription) UnmarshalJSON(data []byte) error {
	var collections struct {
		PedestrianNodes json.RawMessage `json:"pedestrian_nodes"`
		Junctions       json.RawMessage `json:"junctions"`
		Ways            json.RawMessage `json:"ways"`
		Branches        json.RawMessage `json:"branches"`
		Center          json.RawMessage `json:"center"`
	}
	if err := json.Unmarshal(data, &collections); err != nil {
		return &ModelIntegrityError{Collection: "description", Reason: fmt.Sprintf("malformed JSON: %s", err.Error())}
	}
	*raw = RawDescription{}
	if err := decodeCollection("pedestrian_nodes", collections.PedestrianNodes, &raw.PedestrianNodes); err != nil {
		return err
	}
	if err := decodeCollection("junctions", collections.Junctions, &raw.Junctions); err != nil {
		return err
	}
	if err := decodeCollection("ways", collections.Ways, &raw.Ways); err != nil {
		return err
	}
	if err := decodeCollection("branches", collections.Branches, &raw.Branches); err != nil {
		return err
	}
	return decodeCollection("center", collections.Center, &raw.Center)
}

func decodeCollection(collection string, data json.RawMessage, target any) error {
	if len(data) == 0 {
		return nil
	}
	err := json.Unmarshal(data, target)
	if err == nil {
		return nil
	}
	var member *memberError
	if errors.As(err, &member) {
		return &ModelIntegrityError{Collection: collection, ID: member.Key, Reason: member.Err.Error()}
	}
	return &ModelIntegrityError{Collection: collection, Reason: err.Error()}
}

type RawPedestrianNode struct {
	Type string `json:"type" validate:"required,oneof=Island Sidewalk"`
}

type RawJunction struct {
	X               *float64   `json:"x" validate:"required"`
	Y               *float64   `json:"y" validate:"required"`
	Type            []string   `json:"type" validate:"required"`
	TactilePaving   string     `json:"cw_tactile_paving" validate:"omitempty,oneof=yes no incorrect"`
	PedestrianNodes []string   `json:"pedestrian_nodes" validate:"dive,required"`
	Phase           flexString `json:"tl_phase"`
	Direction       flexString `json:"tl_direction"`
	Sound           string     `json:"ptl_sound"`
}

type RawChannel struct {
	Type      string `json:"type" validate:"required"`
	Direction string `json:"direction" validate:"required,oneof=in out"`
}

type RawWay struct {
	Name      string       `json:"name"`
	Junctions []string     `json:"junctions" validate:"min=2,dive,required"`
	Channels  []RawChannel `json:"channels" validate:"required,dive"`
	Sidewalks []*string    `json:"sidewalks" validate:"len=2"`
	Islands   []*string    `json:"islands" validate:"len=2"`
}

type RawCrossing struct {
	Crosswalks []string `json:"crosswalks" validate:"dive,required"`
}

type RawBranch struct {
	Angle         float64      `json:"angle"`
	DirectionName string       `json:"direction_name"`
	StreetName    []string     `json:"street_name" validate:"omitempty,len=2"`
	Ways          []string     `json:"ways" validate:"required,dive,required"`
	Crossing      *RawCrossing `json:"crossing"`
}

type RawPoint struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

// LoadIntersectionFile reads model from JSON file and builds the intersection
func LoadIntersectionFile(fileName string) (*Intersection, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open model file")
	}
	defer file.Close()
	return LoadIntersection(file)
}

// LoadIntersection reads model from JSON source and builds the intersection
func LoadIntersection(r io.Reader) (*Intersection, error) {
	raw := RawDescription{}
	err := json.NewDecoder(r).Decode(&raw)
	if err != nil {
		var integrityErr *ModelIntegrityError
		if errors.As(err, &integrityErr) {
			return nil, integrityErr
		}
		return nil, &ModelIntegrityError{Collection: "description", Reason: fmt.Sprintf("malformed JSON: %s", err.Error())}
	}
	return BuildIntersection(&raw)
}

// BuildIntersection resolves all references of the raw model.
// Entities are built in dependency order: pedestrian nodes, junctions, ways, branches.
func BuildIntersection(raw *RawDescription) (*Intersection, error) {
	// Pedestrian nodes may be left out by models without crosswalks
	switch {
	case !raw.Junctions.Present():
		return nil, &ModelIntegrityError{Collection: "junctions", Reason: "collection is required"}
	case !raw.Ways.Present():
		return nil, &ModelIntegrityError{Collection: "ways", Reason: "collection is required"}
	case !raw.Branches.Present():
		return nil, &ModelIntegrityError{Collection: "branches", Reason: "collection is required"}
	}
	pedestrianNodes, err := buildPedestrianNodes(raw)
	if err != nil {
		return nil, err
	}
	junctions, junctionsList, err := buildJunctions(raw, pedestrianNodes)
	if err != nil {
		return nil, err
	}
	ways, waysList, err := buildWays(raw, junctions, pedestrianNodes)
	if err != nil {
		return nil, err
	}
	branches, err := buildBranches(raw, ways, junctions)
	if err != nil {
		return nil, err
	}

	var center orb.Point
	if raw.Center != nil {
		if err := validate.Struct(raw.Center); err != nil {
			return nil, integrityFromValidation("center", "", err)
		}
		center = orb.Point{*raw.Center.X, *raw.Center.Y}
	} else if len(junctionsList) > 0 {
		pts := make([]orb.Point, len(junctionsList))
		for i, junction := range junctionsList {
			pts[i] = junction.Point
		}
		center = findCentroid(pts)
	}

	return NewIntersection(center, branches, junctionsList, waysList), nil
}

func buildPedestrianNodes(raw *RawDescription) (map[string]*PedestrianNode, error) {
	pedestrianNodes := make(map[string]*PedestrianNode, raw.PedestrianNodes.Len())
	for _, id := range raw.PedestrianNodes.Keys() {
		p, _ := raw.PedestrianNodes.Get(id)
		if err := validate.Struct(&p); err != nil {
			return nil, integrityFromValidation("pedestrian_nodes", id, err)
		}
		pedestrianNodes[id] = &PedestrianNode{
			ID:   id,
			Kind: pedestrianNodeKinds[p.Type],
		}
	}
	return pedestrianNodes, nil
}

func buildJunctions(raw *RawDescription, pedestrianNodes map[string]*PedestrianNode) (map[string]*Junction, []*Junction, error) {
	junctions := make(map[string]*Junction, raw.Junctions.Len())
	junctionsList := make([]*Junction, 0, raw.Junctions.Len())
	for _, id := range raw.Junctions.Keys() {
		j, _ := raw.Junctions.Get(id)
		if err := validate.Struct(&j); err != nil {
			return nil, nil, integrityFromValidation("junctions", id, err)
		}
		junction := NewJunction(id, *j.X, *j.Y)
		// Capabilities are attached in document order, though the order doesn't matter
		for _, typeName := range j.Type {
			capability, ok := capabilities[typeName]
			if !ok {
				// Base "Junction" type or something we don't describe
				continue
			}
			switch capability {
			case CAPABILITY_CROSSWALK:
				if j.TactilePaving == "" {
					return nil, nil, &ModelIntegrityError{Collection: "junctions", ID: id, Reason: "field 'cw_tactile_paving' is required for Crosswalk"}
				}
				nodes := make([]*PedestrianNode, 0, len(j.PedestrianNodes))
				for _, nodeID := range j.PedestrianNodes {
					node, ok := pedestrianNodes[nodeID]
					if !ok {
						return nil, nil, &ModelIntegrityError{Collection: "junctions", ID: id, Reference: nodeID, Reason: "pedestrian_nodes"}
					}
					nodes = append(nodes, node)
				}
				junction.WithCrosswalk(Crosswalk{
					TactilePaving:   tactilePavings[j.TactilePaving],
					PedestrianNodes: nodes,
				})
			case CAPABILITY_TRAFFIC_LIGHT:
				junction.WithTrafficLight(TrafficLight{
					Phase:     string(j.Phase),
					Direction: string(j.Direction),
				})
			case CAPABILITY_PEDESTRIAN_TRAFFIC_LIGHT:
				junction.WithPedestrianTrafficLight(PedestrianTrafficLight{
					Sound: j.Sound == "yes",
				})
			}
		}
		junctions[id] = junction
		junctionsList = append(junctionsList, junction)
	}
	return junctions, junctionsList, nil
}

func buildWays(raw *RawDescription, junctions map[string]*Junction, pedestrianNodes map[string]*PedestrianNode) (map[string]*Way, []*Way, error) {
	ways := make(map[string]*Way, raw.Ways.Len())
	waysList := make([]*Way, 0, raw.Ways.Len())
	for _, id := range raw.Ways.Keys() {
		w, _ := raw.Ways.Get(id)
		if err := validate.Struct(&w); err != nil {
			return nil, nil, integrityFromValidation("ways", id, err)
		}
		way := &Way{
			ID:        id,
			Name:      w.Name,
			Junctions: make([]*Junction, 0, len(w.Junctions)),
			Channels:  make([]Channel, 0, len(w.Channels)),
		}
		for _, junctionID := range w.Junctions {
			junction, ok := junctions[junctionID]
			if !ok {
				return nil, nil, &ModelIntegrityError{Collection: "ways", ID: id, Reference: junctionID, Reason: "junctions"}
			}
			way.Junctions = append(way.Junctions, junction)
		}
		for _, channel := range w.Channels {
			way.Channels = append(way.Channels, Channel{
				Type:      getChannelType(channel.Type),
				Direction: directions[channel.Direction],
			})
		}
		for i := 0; i < 2; i++ {
			sidewalk, err := optionalPedestrianNode(pedestrianNodes, w.Sidewalks[i])
			if err != nil {
				return nil, nil, &ModelIntegrityError{Collection: "ways", ID: id, Reference: *w.Sidewalks[i], Reason: "sidewalks"}
			}
			way.Sidewalks[i] = sidewalk
			island, err := optionalPedestrianNode(pedestrianNodes, w.Islands[i])
			if err != nil {
				return nil, nil, &ModelIntegrityError{Collection: "ways", ID: id, Reference: *w.Islands[i], Reason: "islands"}
			}
			way.Islands[i] = island
		}
		ways[id] = way
		waysList = append(waysList, way)
	}
	return ways, waysList, nil
}

func buildBranches(raw *RawDescription, ways map[string]*Way, junctions map[string]*Junction) ([]*Branch, error) {
	branches := make([]*Branch, 0, raw.Branches.Len())
	for _, id := range raw.Branches.Keys() {
		b, _ := raw.Branches.Get(id)
		if err := validate.Struct(&b); err != nil {
			return nil, integrityFromValidation("branches", id, err)
		}
		branch := &Branch{
			Number:        id,
			Angle:         b.Angle,
			DirectionName: b.DirectionName,
			Ways:          make([]*Way, 0, len(b.Ways)),
		}
		if len(b.StreetName) == 2 {
			branch.StreetName = &StreetName{
				Generic: b.StreetName[0],
				Proper:  b.StreetName[1],
			}
		}
		for _, wayID := range b.Ways {
			way, ok := ways[wayID]
			if !ok {
				return nil, &ModelIntegrityError{Collection: "branches", ID: id, Reference: wayID, Reason: "ways"}
			}
			branch.Ways = append(branch.Ways, way)
		}
		if b.Crossing != nil && len(b.Crossing.Crosswalks) > 0 {
			crossing := &Crossing{
				Crosswalks: make([]*Junction, 0, len(b.Crossing.Crosswalks)),
			}
			for _, crosswalkID := range b.Crossing.Crosswalks {
				junction, ok := junctions[crosswalkID]
				if !ok {
					return nil, &ModelIntegrityError{Collection: "branches", ID: id, Reference: crosswalkID, Reason: "crossing.crosswalks"}
				}
				if !junction.Has(CAPABILITY_CROSSWALK) {
					return nil, &ModelIntegrityError{Collection: "branches", ID: id, Reason: fmt.Sprintf("crossing stage '%s' is not a crosswalk", crosswalkID)}
				}
				crossing.Crosswalks = append(crossing.Crosswalks, junction)
			}
			branch.Crossing = crossing
		}
		branches = append(branches, branch)
	}
	return branches, nil
}

// optionalPedestrianNode resolves nullable reference. Empty or null reference gives nil node.
func optionalPedestrianNode(pedestrianNodes map[string]*PedestrianNode, id *string) (*PedestrianNode, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	node, ok := pedestrianNodes[*id]
	if !ok {
		return nil, fmt.Errorf("No such pedestrian node '%s'", *id)
	}
	return node, nil
}

func integrityFromValidation(collection, id string, err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fieldErr := validationErrs[0]
		return &ModelIntegrityError{
			Collection: collection,
			ID:         id,
			Reason:     fmt.Sprintf("field '%s' failed on '%s' rule", fieldErr.Field(), fieldErr.Tag()),
		}
	}
	return &ModelIntegrityError{Collection: collection, ID: id, Reason: err.Error()}
}
