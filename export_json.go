package crdesc

import (
	"encoding/json"
	"io"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// BindingBranch is branch's text bound to junctions of its ways
type BindingBranch struct {
	// Junction identifiers per way
	Nodes [][]string        `json:"nodes"`
	Text  string            `json:"text"`
	Tags  map[string]string `json:"tags"`
}

// BindingCrossing is crosswalk's text bound to its junction
type BindingCrossing struct {
	Node string            `json:"node"`
	Text string            `json:"text"`
	Tags map[string]string `json:"tags"`
}

// Binding attaches descriptions to model entities
type Binding struct {
	Introduction string            `json:"introduction"`
	Branches     []BindingBranch   `json:"branches"`
	Crossings    []BindingCrossing `json:"crossings"`
}

// PrepareBinding binds descriptions to junctions. Branch text is the branch description followed by
// its crossing predicate with a pronoun as subject.
func PrepareBinding(intersection *Intersection, description *Description) (*Binding, error) {
	if !description.matches(intersection) {
		return nil, ErrDescriptionMismatch
	}
	binding := &Binding{
		Introduction: description.Introduction,
		Branches:     make([]BindingBranch, len(intersection.Branches)),
		Crossings:    make([]BindingCrossing, len(description.Crosswalks)),
	}
	pronoun := description.Pronoun()
	for i, branch := range intersection.Branches {
		nodes := make([][]string, len(branch.Ways))
		for j, way := range branch.Ways {
			nodes[j] = way.JunctionIDs()
		}
		binding.Branches[i] = BindingBranch{
			Nodes: nodes,
			Text:  description.Branches[i] + " " + pronoun + " " + description.CrossingPredicates[i],
			Tags:  autoTags().Map(),
		}
	}
	for i, crosswalk := range description.Crosswalks {
		tags := autoTags()
		if junction, ok := intersection.Junction(crosswalk.JunctionID); ok {
			if nodeID, ok := junction.OSMNodeID(); ok {
				tags = append(tags, osm.Tag{Key: "osm_node", Value: nodeID.FeatureID().String()})
			}
		}
		binding.Crossings[i] = BindingCrossing{
			Node: crosswalk.JunctionID,
			Text: crosswalk.Text,
			Tags: tags.Map(),
		}
	}
	return binding, nil
}

// ExportBindingJSON writes binding as JSON. Text is written verbatim: neither non-ASCII nor HTML characters are escaped.
func ExportBindingJSON(w io.Writer, intersection *Intersection, description *Description) error {
	binding, err := PrepareBinding(intersection, description)
	if err != nil {
		return errors.Wrap(err, "Can't prepare binding")
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(binding); err != nil {
		return errors.Wrap(err, "Can't encode binding")
	}
	return nil
}

// autoTags marks generated texts
func autoTags() osm.Tags {
	return osm.Tags{{Key: "auto", Value: "yes"}}
}
