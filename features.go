package crdesc

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// Kinds of described features
const (
	FEATURE_CROSSROADS = "crossroads"
	FEATURE_BRANCH     = "branch"
	FEATURE_WAY        = "way"
	FEATURE_CROSSWALK  = "crosswalk"
	FEATURE_CROSSING   = "crossing"
)

// describedFeature is a piece of intersection with its geometry and text. Both GeoJSON and CSV exports are built from it.
type describedFeature struct {
	ID          string
	Kind        string
	Name        string
	Description string
	Geometry    orb.Geometry
	// Sidewalks and islands of ways: left, right
	Sidewalks [2]string
	Islands   [2]string
	// LengthMeters is set for multi-stage crossings
	LengthMeters float64
}

// collectFeatures lists features in order: center, branch ways, loose ways, crosswalks, crossings
func collectFeatures(intersection *Intersection, description *Description) ([]describedFeature, error) {
	if !description.matches(intersection) {
		return nil, ErrDescriptionMismatch
	}
	features := []describedFeature{{
		Kind:        FEATURE_CROSSROADS,
		Description: description.Introduction,
		Geometry:    intersection.Center,
	}}

	branchWays := make(map[string]struct{})
	for i, branch := range intersection.Branches {
		for _, way := range branch.Ways {
			feature := wayFeature(way)
			feature.Kind = FEATURE_BRANCH
			feature.Name = fmt.Sprintf("branch n°%s | %s", branch.Number, way.Name)
			feature.Description = description.Branches[i]
			features = append(features, feature)
			branchWays[way.ID] = struct{}{}
		}
	}
	for _, way := range intersection.Ways() {
		if _, ok := branchWays[way.ID]; ok {
			continue
		}
		feature := wayFeature(way)
		feature.Kind = FEATURE_WAY
		feature.Name = way.Name
		features = append(features, feature)
	}

	for _, crosswalk := range description.Crosswalks {
		junction, _ := intersection.Junction(crosswalk.JunctionID)
		features = append(features, describedFeature{
			ID:          junction.ID,
			Kind:        FEATURE_CROSSWALK,
			Description: crosswalk.Text,
			Geometry:    junction.Point,
		})
	}

	for i, crossing := range intersection.Crossings() {
		if crossing.Stages() == 0 {
			continue
		}
		ids := make([]string, len(crossing.Crosswalks))
		line := make(orb.LineString, len(crossing.Crosswalks))
		for j, junction := range crossing.Crosswalks {
			ids[j] = junction.ID
			line[j] = junction.Point
		}
		feature := describedFeature{
			ID:          strings.Join(ids, ";"),
			Kind:        FEATURE_CROSSING,
			Description: description.Crossings[i],
		}
		if len(line) == 1 {
			feature.Geometry = line[0]
		} else {
			feature.Geometry = line
			feature.LengthMeters = getSphericalLength(line) * 1000.0
		}
		features = append(features, feature)
	}
	return features, nil
}

// wayFeature prepares geometry and pedestrian references of the way. Geometry runs between the way's endpoints.
func wayFeature(way *Way) describedFeature {
	first, last := way.Junctions[0], way.Junctions[len(way.Junctions)-1]
	return describedFeature{
		ID:        first.ID + ";" + last.ID,
		Geometry:  orb.LineString{first.Point, last.Point},
		Sidewalks: [2]string{pedestrianNodeID(way.Sidewalks[0]), pedestrianNodeID(way.Sidewalks[1])},
		Islands:   [2]string{pedestrianNodeID(way.Islands[0]), pedestrianNodeID(way.Islands[1])},
	}
}
