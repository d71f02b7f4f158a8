package crdesc

import (
	"strings"

	"github.com/LdDl/crdesc/realizer"
)

// Coverage tells how many crossing stages have some feature
type Coverage uint16

const (
	COVERAGE_NONE = Coverage(iota + 1)
	COVERAGE_PARTIAL
	COVERAGE_ALL
)

func (iotaIdx Coverage) String() string {
	return [...]string{"none", "partial", "all"}[iotaIdx-1]
}

// phrasebook holds everything language dependent which is not grammar: fixed sentences,
// templates and the lemmas used to build sentence plans.
type phrasebook struct {
	headerBranches  string
	headerCrossings string

	// Introduction
	introTemplate string // streets list, branch count
	introEmpty    string
	branchNoun    string
	placeholder   StreetName
	streetItem    func(r *realizer.Realizer, name StreetName, defaulted bool) (string, error)

	// Branches
	subjectTemplate  string // branch number
	named            string // subject, street name
	unnamed          string // subject
	composedFull     string // total lanes PP, directions
	composedSingle   string // lanes PP, direction marker
	composedNothing  string
	directionsJoiner string
	eightLanes       string
	lanesPreposition string
	laneNoun         string
	laneModifiers    map[ChannelType]string
	markers          map[Direction]string

	// Crossings
	pronoun     string
	cannotCross string
	crossedIn   string // steps NP
	stepNoun    string
	protection  map[Coverage]string
	paving      map[Coverage]string

	// Single crosswalks
	crosswalkProtectedSound string
	crosswalkProtected      string
	crosswalkUnprotected    string
	crosswalkPaving         map[TactilePaving]string
}

var (
	phrasebooks = map[realizer.Language]*phrasebook{
		realizer.English: {
			headerBranches:  "== Branches description ==",
			headerCrossings: "== Crossings description ==",

			introTemplate: "The intersection of %s is an intersection with %s.",
			introEmpty:    "The intersection has no branches.",
			branchNoun:    "branch",
			placeholder:   StreetName{Generic: "street", Proper: "with no name"},
			streetItem: func(r *realizer.Realizer, name StreetName, defaulted bool) (string, error) {
				if defaulted {
					return r.NounPhrase(realizer.NounPhrase{Determiner: realizer.DETERMINER_INDEFINITE, Noun: name.Generic, Complement: name.Proper})
				}
				return r.NounPhrase(realizer.NounPhrase{Proper: name.String()})
			},

			subjectTemplate:  "Branch number %s",
			named:            "%s is named %s",
			unnamed:          "%s has no name",
			composedFull:     " and is made %s: %s.",
			composedSingle:   " and is made %s %s.",
			composedNothing:  " and has no lanes.",
			directionsJoiner: ", and ",
			eightLanes:       "of eight lanes",
			lanesPreposition: "of",
			laneNoun:         "lane",
			laneModifiers: map[ChannelType]string{
				CHANNEL_ROAD: "traffic",
				CHANNEL_BUS:  "bus",
			},
			markers: map[Direction]string{
				DIRECTION_IN:  "entering",
				DIRECTION_OUT: "exiting",
			},

			pronoun:     "It",
			cannotCross: "cannot be crossed.",
			crossedIn:   "is crossed in %s.",
			stepNoun:    "step",
			protection: map[Coverage]string{
				COVERAGE_ALL:     "The crosswalks are fully protected by a light.",
				COVERAGE_PARTIAL: "The crosswalks are not all protected by a light.",
				COVERAGE_NONE:    "The crosswalks are not protected by lights.",
			},
			paving: map[Coverage]string{
				COVERAGE_ALL:     "The crossing has tactile paving.",
				COVERAGE_PARTIAL: "The crossing has missing or degraded tactile paving.",
				COVERAGE_NONE:    "The crossing has no tactile paving.",
			},

			crosswalkProtectedSound: "The crosswalk is protected by a light with a sound signal.",
			crosswalkProtected:      "The crosswalk is protected by a light.",
			crosswalkUnprotected:    "The crosswalk is not protected by a light.",
			crosswalkPaving: map[TactilePaving]string{
				TACTILE_PAVING_YES:       "It has tactile paving.",
				TACTILE_PAVING_INCORRECT: "It has missing or degraded tactile paving.",
				TACTILE_PAVING_NO:        "It has no tactile paving.",
			},
		},
		realizer.French: {
			headerBranches:  "== Description des branches ==",
			headerCrossings: "== Description des traversées ==",

			introTemplate: "Le carrefour à l'intersection %s est un carrefour à %s.",
			introEmpty:    "Le carrefour n'a aucune branche.",
			branchNoun:    "branche",
			placeholder:   StreetName{Generic: "rue", Proper: "qui n'a pas de nom"},
			streetItem: func(r *realizer.Realizer, name StreetName, defaulted bool) (string, error) {
				generic := strings.ToLower(name.Generic)
				if _, err := r.Gender(generic); err != nil {
					// Unknown generic term: no article can be chosen
					return r.PrepPhrase("de", realizer.NounPhrase{Proper: name.String()})
				}
				return r.PrepPhrase("de", realizer.NounPhrase{Determiner: realizer.DETERMINER_DEFINITE, Noun: generic, Complement: name.Proper})
			},

			subjectTemplate:  "La branche numéro %s",
			named:            "%s qui s'appelle %s",
			unnamed:          "%s qui n'a pas de nom",
			composedFull:     " est composée %s : %s.",
			composedSingle:   " est composée %s %s.",
			composedNothing:  " n'a aucune voie.",
			directionsJoiner: ", et ",
			eightLanes:       "de huit voies",
			lanesPreposition: "de",
			laneNoun:         "voie",
			laneModifiers: map[ChannelType]string{
				CHANNEL_ROAD: "circulation",
				CHANNEL_BUS:  "bus",
			},
			markers: map[Direction]string{
				DIRECTION_IN:  "entrant",
				DIRECTION_OUT: "sortant",
			},

			pronoun:     "Elle",
			cannotCross: "ne se traverse pas.",
			crossedIn:   "se traverse en %s.",
			stepNoun:    "fois",
			protection: map[Coverage]string{
				COVERAGE_ALL:     "Les passages piétons sont tous protégés par un feu.",
				COVERAGE_PARTIAL: "Les passages piétons ne sont pas tous protégés par un feu.",
				COVERAGE_NONE:    "Les passages piétons ne sont pas protégés par des feux.",
			},
			paving: map[Coverage]string{
				COVERAGE_ALL:     "Il y a des bandes d'éveil de vigilance.",
				COVERAGE_PARTIAL: "Il manque des bandes d'éveil de vigilance ou celles-ci sont dégradées.",
				COVERAGE_NONE:    "Il n'y a pas de bandes d'éveil de vigilance.",
			},

			crosswalkProtectedSound: "Le passage piéton est protégé par un feu sonore.",
			crosswalkProtected:      "Le passage piéton est protégé par un feu.",
			crosswalkUnprotected:    "Le passage piéton n'est pas protégé par un feu.",
			crosswalkPaving: map[TactilePaving]string{
				TACTILE_PAVING_YES:       "Il y a des bandes d'éveil de vigilance.",
				TACTILE_PAVING_INCORRECT: "Il manque des bandes d'éveil de vigilance ou celles-ci sont dégradées.",
				TACTILE_PAVING_NO:        "Il n'y a pas de bandes d'éveil de vigilance.",
			},
		},
	}
)

// Domain vocabulary missing in the realizer's default lexicon
func addDomainVocabulary() {
	realizer.AddNoun(realizer.English, "lane", realizer.Noun{})
	realizer.AddNoun(realizer.English, "traffic", realizer.Noun{})
	realizer.AddNoun(realizer.English, "bus", realizer.Noun{})
	realizer.AddNoun(realizer.English, "step", realizer.Noun{})
	realizer.AddNoun(realizer.English, "crosswalk", realizer.Noun{})
	realizer.AddNoun(realizer.English, "island", realizer.Noun{})
	realizer.AddAdjective(realizer.English, "entering", realizer.Adjective{Invariant: true})
	realizer.AddAdjective(realizer.English, "exiting", realizer.Adjective{Invariant: true})

	realizer.AddNoun(realizer.French, "circulation", realizer.Noun{Gender: realizer.FEMININE})
	realizer.AddNoun(realizer.French, "bus", realizer.Noun{Gender: realizer.MASCULINE})
	realizer.AddNoun(realizer.French, "croisement", realizer.Noun{Gender: realizer.MASCULINE})
	realizer.AddNoun(realizer.French, "îlot", realizer.Noun{Gender: realizer.MASCULINE})
	realizer.AddNoun(realizer.French, "tourne-à-gauche", realizer.Noun{Gender: realizer.MASCULINE, Plural: "tourne-à-gauche"})
	realizer.AddNoun(realizer.French, "tourne-à-droite", realizer.Noun{Gender: realizer.MASCULINE, Plural: "tourne-à-droite"})
	realizer.AddAdjective(realizer.French, "entrant", realizer.Adjective{})
	realizer.AddAdjective(realizer.French, "sortant", realizer.Adjective{})
}
