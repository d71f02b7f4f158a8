package crdesc

import (
	"fmt"
	"strings"

	"github.com/LdDl/crdesc/realizer"
)

// crossingPlan counts what crossing's stages provide
type crossingPlan struct {
	Stages    int
	Protected int
	Paved     int
	Degraded  bool
}

func planCrossing(crossing *Crossing) crossingPlan {
	plan := crossingPlan{
		Stages: crossing.Stages(),
	}
	if plan.Stages == 0 {
		return plan
	}
	for _, junction := range crossing.Crosswalks {
		if junction.Has(CAPABILITY_PEDESTRIAN_TRAFFIC_LIGHT) {
			plan.Protected++
		}
		crosswalk, ok := junction.Crosswalk()
		if !ok {
			continue
		}
		if crosswalk.TactilePaving.Present() {
			plan.Paved++
		}
		if crosswalk.TactilePaving == TACTILE_PAVING_INCORRECT {
			plan.Degraded = true
		}
	}
	return plan
}

// protection classifies light protection of the stages
func (plan crossingPlan) protection() Coverage {
	switch plan.Protected {
	case plan.Stages:
		return COVERAGE_ALL
	case 0:
		return COVERAGE_NONE
	}
	return COVERAGE_PARTIAL
}

// paving classifies tactile paving of the stages. Degraded paving anywhere is never "all".
func (plan crossingPlan) paving() Coverage {
	switch {
	case plan.Paved == plan.Stages && !plan.Degraded:
		return COVERAGE_ALL
	case plan.Paved == 0:
		return COVERAGE_NONE
	}
	return COVERAGE_PARTIAL
}

// describeCrossing returns crossing sentences without the branch subject
func (gen *Generator) describeCrossing(plan crossingPlan) (string, error) {
	if plan.Stages == 0 {
		return gen.phrases.cannotCross, nil
	}
	steps, err := gen.realizer.NounPhrase(realizer.NounPhrase{
		Determiner: realizer.DETERMINER_NUMERAL,
		Count:      plan.Stages,
		Noun:       gen.phrases.stepNoun,
	})
	if err != nil {
		return "", err
	}
	return strings.Join([]string{
		fmt.Sprintf(gen.phrases.crossedIn, steps),
		gen.phrases.protection[plan.protection()],
		gen.phrases.paving[plan.paving()],
	}, " "), nil
}

// describeCrosswalk tells about light and tactile paving of a single crosswalk
func (gen *Generator) describeCrosswalk(junction *Junction) string {
	light := gen.phrases.crosswalkUnprotected
	if pedestrianLight, ok := junction.PedestrianTrafficLight(); ok {
		light = gen.phrases.crosswalkProtected
		if pedestrianLight.Sound {
			light = gen.phrases.crosswalkProtectedSound
		}
	}
	paving := TACTILE_PAVING_NO
	if crosswalk, ok := junction.Crosswalk(); ok {
		paving = crosswalk.TactilePaving
	}
	return light + " " + gen.phrases.crosswalkPaving[paving]
}
