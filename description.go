package crdesc

import (
	"strings"

	"github.com/LdDl/crdesc/realizer"
)

// CrosswalkDescription is description of a single crosswalk junction
type CrosswalkDescription struct {
	JunctionID string `json:"node"`
	Text       string `json:"text"`
}

// Description is the generated text of an intersection. Branches, Crossings and CrossingPredicates follow branch order.
type Description struct {
	Language     realizer.Language `json:"language"`
	Introduction string            `json:"introduction"`
	Branches     []string          `json:"branches"`
	Crossings    []string          `json:"crossings"`
	// CrossingPredicates are crossing sentences with the branch subject left out
	CrossingPredicates []string               `json:"crossing_predicates"`
	Crosswalks         []CrosswalkDescription `json:"crosswalks"`
}

// Text assembles the document: introduction, branches section and crossings section, every fragment followed by a blank line
func (description *Description) Text() string {
	phrases, ok := phrasebooks[description.Language]
	if !ok {
		phrases = phrasebooks[realizer.English]
	}
	var sb strings.Builder
	paragraph := func(text string) {
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}
	paragraph(description.Introduction)
	paragraph(phrases.headerBranches)
	for _, text := range description.Branches {
		paragraph(text)
	}
	paragraph(phrases.headerCrossings)
	for _, text := range description.Crossings {
		paragraph(text)
	}
	return sb.String()
}

// Pronoun returns subject pronoun standing for a branch
func (description *Description) Pronoun() string {
	phrases, ok := phrasebooks[description.Language]
	if !ok {
		phrases = phrasebooks[realizer.English]
	}
	return phrases.pronoun
}

// matches checks that description was generated for the intersection
func (description *Description) matches(intersection *Intersection) bool {
	n := len(intersection.Branches)
	if len(description.Branches) != n || len(description.Crossings) != n || len(description.CrossingPredicates) != n {
		return false
	}
	crosswalks := intersection.Crosswalks()
	if len(description.Crosswalks) != len(crosswalks) {
		return false
	}
	for i, junction := range crosswalks {
		if description.Crosswalks[i].JunctionID != junction.ID {
			return false
		}
	}
	return true
}
