package crdesc

import (
	"fmt"
	"strings"

	"github.com/LdDl/crdesc/realizer"
)

// laneCount is number of lanes of one type
type laneCount struct {
	Type  ChannelType
	Count int
}

// directionPlan is lanes flowing in one direction grouped by type in first-seen order
type directionPlan struct {
	Direction Direction
	Lanes     []laneCount
	Total     int
}

// lanePlan is the content of a branch sentence decided before realization
type lanePlan struct {
	Total int
	// Outgoing first, incoming second
	Directions [2]directionPlan
}

// planLanes aggregates channels by (direction, type)
func planLanes(channels []Channel) lanePlan {
	plan := lanePlan{
		Directions: [2]directionPlan{
			{Direction: DIRECTION_OUT},
			{Direction: DIRECTION_IN},
		},
	}
	for _, channel := range channels {
		idx := 0
		if channel.Direction == DIRECTION_IN {
			idx = 1
		}
		dir := &plan.Directions[idx]
		found := false
		for i := range dir.Lanes {
			if dir.Lanes[i].Type == channel.Type {
				dir.Lanes[i].Count++
				found = true
				break
			}
		}
		if !found {
			dir.Lanes = append(dir.Lanes, laneCount{Type: channel.Type, Count: 1})
		}
		dir.Total++
		plan.Total++
	}
	return plan
}

// pairs returns number of distinct (direction, type) pairs
func (plan lanePlan) pairs() int {
	return len(plan.Directions[0].Lanes) + len(plan.Directions[1].Lanes)
}

// describeIntroduction states street names and number of branches
func (gen *Generator) describeIntroduction(branches []*Branch, names []branchName) (string, error) {
	if len(branches) == 0 {
		gen.logger.Warn("Intersection has no branches")
		return gen.phrases.introEmpty, nil
	}
	seen := make(map[branchName]struct{}, len(names))
	items := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		item, err := gen.phrases.streetItem(gen.realizer, name.name, name.defaulted)
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}
	count, err := gen.realizer.NounPhrase(realizer.NounPhrase{Determiner: realizer.DETERMINER_DIGITS, Count: len(branches), Noun: gen.phrases.branchNoun})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(gen.phrases.introTemplate, gen.realizer.Coordinate(items...), count), nil
}

// describeBranch tells branch's name and lanes composition
func (gen *Generator) describeBranch(subject string, name branchName, plan lanePlan) (string, error) {
	var sb strings.Builder
	if name.defaulted {
		sb.WriteString(fmt.Sprintf(gen.phrases.unnamed, subject))
	} else {
		sb.WriteString(fmt.Sprintf(gen.phrases.named, subject, name.name.String()))
	}

	switch plan.pairs() {
	case 0:
		sb.WriteString(gen.phrases.composedNothing)
	case 1:
		for _, dir := range plan.Directions {
			if dir.Total == 0 {
				continue
			}
			lanes, err := gen.realizer.PrepPhrase(gen.phrases.lanesPreposition, gen.lanesPhrase(dir.Lanes[0]))
			if err != nil {
				return "", err
			}
			marker, err := gen.directionMarker(dir)
			if err != nil {
				return "", err
			}
			sb.WriteString(fmt.Sprintf(gen.phrases.composedSingle, lanes, marker))
		}
	default:
		total, err := gen.totalLanes(plan.Total)
		if err != nil {
			return "", err
		}
		parts := make([]string, 0, 2)
		for _, dir := range plan.Directions {
			if dir.Total == 0 {
				continue
			}
			part, err := gen.directionPhrase(dir)
			if err != nil {
				return "", err
			}
			parts = append(parts, part)
		}
		sb.WriteString(fmt.Sprintf(gen.phrases.composedFull, total, strings.Join(parts, gen.phrases.directionsJoiner)))
	}
	return sb.String(), nil
}

// totalLanes is "of <n> lanes"
func (gen *Generator) totalLanes(total int) (string, error) {
	if total == 8 {
		return gen.phrases.eightLanes, nil
	}
	return gen.realizer.PrepPhrase(gen.phrases.lanesPreposition, realizer.NounPhrase{
		Determiner: realizer.DETERMINER_NUMERAL,
		Count:      total,
		Noun:       gen.phrases.laneNoun,
	})
}

func (gen *Generator) lanesPhrase(lanes laneCount) realizer.NounPhrase {
	return realizer.NounPhrase{
		Determiner: realizer.DETERMINER_NUMERAL,
		Count:      lanes.Count,
		Noun:       gen.phrases.laneNoun,
		Modifier:   gen.phrases.laneModifiers[lanes.Type],
	}
}

// directionPhrase is "three traffic lanes and one bus lane exiting"
func (gen *Generator) directionPhrase(dir directionPlan) (string, error) {
	items := make([]string, 0, len(dir.Lanes))
	for _, lanes := range dir.Lanes {
		item, err := gen.realizer.NounPhrase(gen.lanesPhrase(lanes))
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}
	marker, err := gen.directionMarker(dir)
	if err != nil {
		return "", err
	}
	return gen.realizer.Coordinate(items...) + " " + marker, nil
}

// directionMarker agrees with lane noun and the direction's lanes total
func (gen *Generator) directionMarker(dir directionPlan) (string, error) {
	gender, err := gen.realizer.Gender(gen.phrases.laneNoun)
	if err != nil {
		return "", err
	}
	return gen.realizer.Adjective(gen.phrases.markers[dir.Direction], gender, dir.Total > 1)
}
