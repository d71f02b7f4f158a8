package crdesc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/LdDl/crdesc/realizer"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// channelsOf maps 0..3 to (direction, type) pairs
func channelsOf(codes []int) []Channel {
	channels := make([]Channel, len(codes))
	for i, code := range codes {
		channels[i] = Channel{Direction: DIRECTION_IN, Type: CHANNEL_ROAD}
		if code&1 == 1 {
			channels[i].Direction = DIRECTION_OUT
		}
		if code&2 == 2 {
			channels[i].Type = CHANNEL_BUS
		}
	}
	return channels
}

func TestDescriptionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("lane counts sum up to total", prop.ForAll(
		func(codes []int) bool {
			plan := planLanes(channelsOf(codes))
			sum := 0
			for _, dir := range plan.Directions {
				dirSum := 0
				for _, lanes := range dir.Lanes {
					dirSum += lanes.Count
				}
				if dirSum != dir.Total {
					return false
				}
				sum += dirSum
			}
			return sum == plan.Total && plan.Total == len(codes)
		},
		gen.SliceOf(gen.IntRange(0, 3)),
	))

	properties.Property("generation is deterministic", prop.ForAll(
		func(codes []int, french bool) bool {
			lang := realizer.English
			if french {
				lang = realizer.French
			}
			generator, err := NewGenerator(WithLanguage(lang))
			if err != nil {
				return false
			}
			intersection := singleBranch("1", nil, channelsOf(codes), nil)
			first, err := generator.Generate(intersection)
			if err != nil {
				return false
			}
			second, err := generator.Generate(intersection)
			if err != nil {
				return false
			}
			return first.Text() == second.Text()
		},
		gen.SliceOf(gen.IntRange(0, 3)),
		gen.Bool(),
	))

	properties.Property("incoming-only branch never mentions outgoing lanes", prop.ForAll(
		func(types []int) bool {
			codes := make([]int, len(types))
			for i := range types {
				codes[i] = types[i] * 2 // even codes are incoming
			}
			description, err := Generate(singleBranch("1", nil, channelsOf(codes), nil))
			if err != nil {
				return false
			}
			text := description.Branches[0]
			return !strings.Contains(text, "exiting") && !strings.Contains(text, ", and")
		},
		gen.SliceOfN(4, gen.IntRange(0, 1)),
	))

	properties.Property("fully protected and paved crossings", prop.ForAll(
		func(stages int) bool {
			crosswalks := make([]*Junction, stages)
			for i := range crosswalks {
				crosswalks[i] = crosswalkJunction(fmt.Sprintf("c%d", i), TACTILE_PAVING_YES, &PedestrianTrafficLight{})
			}
			description, err := Generate(singleBranch("1", nil, nil, &Crossing{Crosswalks: crosswalks}))
			if err != nil {
				return false
			}
			text := description.Crossings[0]
			return strings.Contains(text, "fully protected by a light") &&
				strings.Contains(text, "has tactile paving") &&
				!strings.Contains(text, "not all") &&
				!strings.Contains(text, "missing")
		},
		gen.IntRange(1, 6),
	))

	properties.TestingRun(t)
}
