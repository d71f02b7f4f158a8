package crdesc

import "strings"

// StreetName is a two-part street label: generic term and proper name ("rue" + "de Rivoli")
type StreetName struct {
	Generic string
	Proper  string
}

// String joins both parts of the label
func (name StreetName) String() string {
	return strings.TrimSpace(name.Generic + " " + name.Proper)
}

// Crossing is an ordered sequence of crosswalks a pedestrian walks through to cross a branch
type Crossing struct {
	Crosswalks []*Junction
}

// Stages returns number of crossing stages. Nil crossing has none.
func (crossing *Crossing) Stages() int {
	if crossing == nil {
		return 0
	}
	return len(crossing.Crosswalks)
}

// Branch is one leg of the intersection
type Branch struct {
	// Number is branch's identifier in the model. It's used as the branch number in descriptions.
	Number        string
	Angle         float64
	DirectionName string
	// StreetName is nil when the street is unnamed
	StreetName *StreetName
	Ways       []*Way
	Crossing   *Crossing
}

// Channels returns lanes of all branch's ways
func (branch *Branch) Channels() []Channel {
	channels := []Channel{}
	for _, way := range branch.Ways {
		channels = append(channels, way.Channels...)
	}
	return channels
}
