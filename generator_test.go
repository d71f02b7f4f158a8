package crdesc

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/LdDl/crdesc/realizer"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestIntersection(t *testing.T) *Intersection {
	t.Helper()
	intersection, err := LoadIntersectionFile("testdata/intersection.json")
	require.NoError(t, err)
	return intersection
}

func lanes(direction Direction, channelType ChannelType, n int) []Channel {
	ans := make([]Channel, n)
	for i := range ans {
		ans[i] = Channel{Type: channelType, Direction: direction}
	}
	return ans
}

// singleBranch builds intersection with one branch made of one way with given channels
func singleBranch(number string, name *StreetName, channels []Channel, crossing *Crossing) *Intersection {
	a := NewJunction("a", 2.35, 48.85)
	b := NewJunction("b", 2.351, 48.851)
	way := &Way{ID: "w", Junctions: []*Junction{a, b}, Channels: channels}
	junctions := []*Junction{a, b}
	if crossing != nil {
		junctions = append(junctions, crossing.Crosswalks...)
	}
	branch := &Branch{Number: number, StreetName: name, Ways: []*Way{way}, Crossing: crossing}
	return NewIntersection(a.Point, []*Branch{branch}, junctions, []*Way{way})
}

func TestGenerateEnglish(t *testing.T) {
	intersection := loadTestIntersection(t)
	description, err := Generate(intersection)
	require.NoError(t, err)

	assert.Equal(t, realizer.English, description.Language)
	assert.Equal(t, "The intersection of Main Street and a street with no name is an intersection with 2 branches.", description.Introduction)
	require.Len(t, description.Branches, 2)
	assert.Equal(t, "Branch number one is named Main Street and is made of two lanes: one traffic lane exiting, and one traffic lane entering.", description.Branches[0])
	assert.Equal(t, "Branch number two has no name and is made of four lanes: three traffic lanes and one bus lane exiting.", description.Branches[1])

	require.Len(t, description.Crossings, 2)
	assert.Equal(t, "Branch number one is crossed in one step. The crosswalks are fully protected by a light. The crossing has tactile paving.", description.Crossings[0])
	assert.Equal(t, "Branch number two is crossed in two steps. The crosswalks are not all protected by a light. The crossing has missing or degraded tactile paving.", description.Crossings[1])
	assert.Equal(t, "is crossed in one step. The crosswalks are fully protected by a light. The crossing has tactile paving.", description.CrossingPredicates[0])

	require.Len(t, description.Crosswalks, 4)
	assert.Equal(t, []CrosswalkDescription{
		{JunctionID: "101", Text: "The crosswalk is protected by a light with a sound signal. It has tactile paving."},
		{JunctionID: "201", Text: "The crosswalk is not protected by a light. It has missing or degraded tactile paving."},
		{JunctionID: "202", Text: "The crosswalk is protected by a light. It has tactile paving."},
		{JunctionID: "300", Text: "The crosswalk is not protected by a light. It has no tactile paving."},
	}, description.Crosswalks)
}

func TestGenerateFrench(t *testing.T) {
	intersection := loadTestIntersection(t)
	gen, err := NewGenerator(WithLanguage(realizer.French))
	require.NoError(t, err)
	description, err := gen.Generate(intersection)
	require.NoError(t, err)

	assert.Equal(t, "Le carrefour à l'intersection de Main Street et de la rue qui n'a pas de nom est un carrefour à 2 branches.", description.Introduction)
	assert.Equal(t, "La branche numéro un qui s'appelle Main Street est composée de deux voies : une voie de circulation sortante, et une voie de circulation entrante.", description.Branches[0])
	assert.Equal(t, "La branche numéro deux qui n'a pas de nom est composée de quatre voies : trois voies de circulation et une voie de bus sortantes.", description.Branches[1])
	assert.Equal(t, "La branche numéro un se traverse en une fois. Les passages piétons sont tous protégés par un feu. Il y a des bandes d'éveil de vigilance.", description.Crossings[0])
	assert.Equal(t, "La branche numéro deux se traverse en deux fois. Les passages piétons ne sont pas tous protégés par un feu. Il manque des bandes d'éveil de vigilance ou celles-ci sont dégradées.", description.Crossings[1])
	assert.Equal(t, "Le passage piéton est protégé par un feu sonore. Il y a des bandes d'éveil de vigilance.", description.Crosswalks[0].Text)
	assert.Equal(t, "Le passage piéton n'est pas protégé par un feu. Il n'y a pas de bandes d'éveil de vigilance.", description.Crosswalks[3].Text)
}

func TestFrenchStreetNames(t *testing.T) {
	a := NewJunction("a", 2.35, 48.85)
	b := NewJunction("b", 2.351, 48.851)
	way := &Way{ID: "w", Junctions: []*Junction{a, b}, Channels: lanes(DIRECTION_IN, CHANNEL_ROAD, 1)}
	branches := []*Branch{
		{Number: "1", StreetName: &StreetName{Generic: "Rue", Proper: "de Rivoli"}, Ways: []*Way{way}},
		{Number: "2", StreetName: &StreetName{Generic: "Boulevard", Proper: "Saint-Michel"}, Ways: []*Way{way}},
		{Number: "3", StreetName: &StreetName{Generic: "Avenue", Proper: "Jean Jaurès"}, Ways: []*Way{way}},
		{Number: "4", StreetName: &StreetName{Generic: "Rue", Proper: "de Rivoli"}, Ways: []*Way{way}},
	}
	intersection := NewIntersection(a.Point, branches, []*Junction{a, b}, []*Way{way})

	gen, err := NewGenerator(WithLanguage(realizer.French))
	require.NoError(t, err)
	description, err := gen.Generate(intersection)
	require.NoError(t, err)
	assert.Equal(t, "Le carrefour à l'intersection de la rue de Rivoli, du boulevard Saint-Michel et de l'avenue Jean Jaurès est un carrefour à 4 branches.", description.Introduction)
	assert.Equal(t, "La branche numéro un qui s'appelle Rue de Rivoli est composée d'une voie de circulation entrante.", description.Branches[0])
}

func TestIntroductionDeduplicatesStreets(t *testing.T) {
	a := NewJunction("a", 0, 0)
	b := NewJunction("b", 1, 1)
	way := &Way{ID: "w", Junctions: []*Junction{a, b}}
	main := StreetName{Proper: "Main Street"}
	elm := StreetName{Proper: "Elm Street"}
	branches := []*Branch{
		{Number: "1", StreetName: &main, Ways: []*Way{way}},
		{Number: "2", StreetName: &elm, Ways: []*Way{way}},
		{Number: "3", Ways: []*Way{way}},
		{Number: "4", StreetName: &StreetName{Proper: "Main Street"}, Ways: []*Way{way}},
		{Number: "5", Ways: []*Way{way}},
		{Number: "6", StreetName: &StreetName{Proper: "Oak Street"}, Ways: []*Way{way}},
	}
	intersection := NewIntersection(a.Point, branches, []*Junction{a, b}, []*Way{way})
	description, err := Generate(intersection)
	require.NoError(t, err)
	assert.Equal(t, "The intersection of Main Street, Elm Street, a street with no name, and Oak Street is an intersection with 6 branches.", description.Introduction)
}

func TestBranchCollapse(t *testing.T) {
	cases := []struct {
		name     string
		channels []Channel
		lang     realizer.Language
		expected string
	}{
		{
			name:     "two lanes entering",
			channels: lanes(DIRECTION_IN, CHANNEL_ROAD, 2),
			lang:     realizer.English,
			expected: "Branch number three is named Elm Street and is made of two traffic lanes entering.",
		},
		{
			name:     "one bus lane exiting",
			channels: lanes(DIRECTION_OUT, CHANNEL_BUS, 1),
			lang:     realizer.English,
			expected: "Branch number three is named Elm Street and is made of one bus lane exiting.",
		},
		{
			name:     "une voie entrante",
			channels: lanes(DIRECTION_IN, CHANNEL_ROAD, 1),
			lang:     realizer.French,
			expected: "La branche numéro trois qui s'appelle Elm Street est composée d'une voie de circulation entrante.",
		},
		{
			name:     "huit voies sortantes",
			channels: lanes(DIRECTION_OUT, CHANNEL_ROAD, 8),
			lang:     realizer.French,
			expected: "La branche numéro trois qui s'appelle Elm Street est composée de huit voies de circulation sortantes.",
		},
		{
			name:     "no lanes",
			channels: nil,
			lang:     realizer.English,
			expected: "Branch number three is named Elm Street and has no lanes.",
		},
		{
			name:     "aucune voie",
			channels: nil,
			lang:     realizer.French,
			expected: "La branche numéro trois qui s'appelle Elm Street n'a aucune voie.",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gen, err := NewGenerator(WithLanguage(c.lang))
			require.NoError(t, err)
			description, err := gen.Generate(singleBranch("3", &StreetName{Proper: "Elm Street"}, c.channels, nil))
			require.NoError(t, err)
			assert.Equal(t, c.expected, description.Branches[0])
		})
	}
}

func TestEightLanes(t *testing.T) {
	channels := append(lanes(DIRECTION_OUT, CHANNEL_ROAD, 6), lanes(DIRECTION_IN, CHANNEL_BUS, 2)...)
	intersection := singleBranch("1", nil, channels, nil)

	description, err := Generate(intersection)
	require.NoError(t, err)
	assert.Equal(t, "Branch number one has no name and is made of eight lanes: six traffic lanes exiting, and two bus lanes entering.", description.Branches[0])

	gen, err := NewGenerator(WithLanguage(realizer.French))
	require.NoError(t, err)
	description, err = gen.Generate(intersection)
	require.NoError(t, err)
	assert.Equal(t, "La branche numéro un qui n'a pas de nom est composée de huit voies : six voies de circulation sortantes, et deux voies de bus entrantes.", description.Branches[0])
}

func TestIncomingOnlyHasNoConnector(t *testing.T) {
	channels := append(lanes(DIRECTION_IN, CHANNEL_ROAD, 2), lanes(DIRECTION_IN, CHANNEL_BUS, 1)...)
	description, err := Generate(singleBranch("1", nil, channels, nil))
	require.NoError(t, err)
	assert.Equal(t, "Branch number one has no name and is made of three lanes: two traffic lanes and one bus lane entering.", description.Branches[0])
	assert.NotContains(t, description.Branches[0], ", and")
	assert.NotContains(t, description.Branches[0], "exiting")
}

func TestNonNumericBranchNumber(t *testing.T) {
	description, err := Generate(singleBranch("north", nil, lanes(DIRECTION_IN, CHANNEL_ROAD, 1), nil))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(description.Branches[0], "Branch number north has no name"))
}

func crosswalkJunction(id string, paving TactilePaving, light *PedestrianTrafficLight) *Junction {
	junction := NewJunction(id, 2.35, 48.85).WithCrosswalk(Crosswalk{TactilePaving: paving})
	if light != nil {
		junction.WithPedestrianTrafficLight(*light)
	}
	return junction
}

func TestCrossingRules(t *testing.T) {
	light := &PedestrianTrafficLight{}
	cases := []struct {
		name     string
		crossing *Crossing
		expected string
	}{
		{
			name:     "absent",
			crossing: nil,
			expected: "Branch number one cannot be crossed.",
		},
		{
			name:     "zero stages",
			crossing: &Crossing{},
			expected: "Branch number one cannot be crossed.",
		},
		{
			name: "all protected and paved",
			crossing: &Crossing{Crosswalks: []*Junction{
				crosswalkJunction("c1", TACTILE_PAVING_YES, light),
				crosswalkJunction("c2", TACTILE_PAVING_YES, light),
				crosswalkJunction("c3", TACTILE_PAVING_YES, light),
			}},
			expected: "Branch number one is crossed in three steps. The crosswalks are fully protected by a light. The crossing has tactile paving.",
		},
		{
			name: "one degraded",
			crossing: &Crossing{Crosswalks: []*Junction{
				crosswalkJunction("c1", TACTILE_PAVING_YES, nil),
				crosswalkJunction("c2", TACTILE_PAVING_INCORRECT, nil),
			}},
			expected: "Branch number one is crossed in two steps. The crosswalks are not protected by lights. The crossing has missing or degraded tactile paving.",
		},
		{
			name: "nothing at all",
			crossing: &Crossing{Crosswalks: []*Junction{
				crosswalkJunction("c1", TACTILE_PAVING_NO, nil),
			}},
			expected: "Branch number one is crossed in one step. The crosswalks are not protected by lights. The crossing has no tactile paving.",
		},
		{
			name: "partial",
			crossing: &Crossing{Crosswalks: []*Junction{
				crosswalkJunction("c1", TACTILE_PAVING_NO, light),
				crosswalkJunction("c2", TACTILE_PAVING_YES, nil),
			}},
			expected: "Branch number one is crossed in two steps. The crosswalks are not all protected by a light. The crossing has missing or degraded tactile paving.",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			description, err := Generate(singleBranch("1", nil, nil, c.crossing))
			require.NoError(t, err)
			assert.Equal(t, c.expected, description.Crossings[0])
		})
	}
}

func TestCrossingPlan(t *testing.T) {
	plan := planCrossing(nil)
	assert.Equal(t, crossingPlan{}, plan)

	plan = planCrossing(&Crossing{Crosswalks: []*Junction{
		crosswalkJunction("c1", TACTILE_PAVING_INCORRECT, &PedestrianTrafficLight{}),
		crosswalkJunction("c2", TACTILE_PAVING_YES, &PedestrianTrafficLight{}),
	}})
	assert.Equal(t, crossingPlan{Stages: 2, Protected: 2, Paved: 2, Degraded: true}, plan)
	assert.Equal(t, COVERAGE_ALL, plan.protection())
	assert.Equal(t, COVERAGE_PARTIAL, plan.paving())
}

func TestCrosswalkWithSoundAndPaving(t *testing.T) {
	junction := crosswalkJunction("c1", TACTILE_PAVING_YES, &PedestrianTrafficLight{Sound: true})
	intersection := singleBranch("1", nil, nil, &Crossing{Crosswalks: []*Junction{junction}})
	description, err := Generate(intersection)
	require.NoError(t, err)
	require.Len(t, description.Crosswalks, 1)
	text := description.Crosswalks[0].Text
	assert.Contains(t, text, "protected by a light with a sound signal")
	assert.Contains(t, text, "has tactile paving")
	assert.NotContains(t, text, "missing")
}

func TestCrosswalkWithoutPavingState(t *testing.T) {
	junction := NewJunction("c1", 2.35, 48.85).WithCrosswalk(Crosswalk{})
	crosswalk, ok := junction.Crosswalk()
	require.True(t, ok)
	assert.Equal(t, TACTILE_PAVING_NO, crosswalk.TactilePaving)

	description, err := Generate(singleBranch("1", nil, nil, &Crossing{Crosswalks: []*Junction{junction}}))
	require.NoError(t, err)
	assert.Equal(t, "The crosswalk is not protected by a light. It has no tactile paving.", description.Crosswalks[0].Text)
	assert.Contains(t, description.Crossings[0], "The crossing has no tactile paving.")
}

func TestZeroBranches(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	gen, err := NewGenerator(WithLogger(logger))
	require.NoError(t, err)

	description, err := gen.Generate(NewIntersection(orb.Point{}, nil, nil, nil))
	require.NoError(t, err)
	assert.Equal(t, "The intersection has no branches.", description.Introduction)
	assert.Empty(t, description.Branches)
	assert.Empty(t, description.Crossings)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Equal(t, "The intersection has no branches.\n\n== Branches description ==\n\n== Crossings description ==\n\n", description.Text())
}

func TestGenerateDoesNotModifyModel(t *testing.T) {
	intersection := loadTestIntersection(t)
	_, err := Generate(intersection)
	require.NoError(t, err)
	assert.Nil(t, intersection.Branches[1].StreetName)
}

func TestUnsupportedLanguage(t *testing.T) {
	_, err := NewGenerator(WithLanguage(realizer.Language("de")))
	var realizationErr *realizer.RealizationError
	require.True(t, errors.As(err, &realizationErr))
}

func TestDescriptionText(t *testing.T) {
	description, err := Generate(loadTestIntersection(t))
	require.NoError(t, err)
	expected := strings.Join([]string{
		"The intersection of Main Street and a street with no name is an intersection with 2 branches.",
		"== Branches description ==",
		"Branch number one is named Main Street and is made of two lanes: one traffic lane exiting, and one traffic lane entering.",
		"Branch number two has no name and is made of four lanes: three traffic lanes and one bus lane exiting.",
		"== Crossings description ==",
		"Branch number one is crossed in one step. The crosswalks are fully protected by a light. The crossing has tactile paving.",
		"Branch number two is crossed in two steps. The crosswalks are not all protected by a light. The crossing has missing or degraded tactile paving.",
	}, "\n\n") + "\n\n"
	assert.Equal(t, expected, description.Text())
}

func TestGenerateConcurrently(t *testing.T) {
	intersection := loadTestIntersection(t)
	gen, err := NewGenerator(WithLanguage(realizer.French))
	require.NoError(t, err)
	expected, err := gen.Generate(intersection)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			description, err := gen.Generate(intersection)
			if assert.NoError(t, err) {
				assert.Equal(t, expected, description)
			}
		}()
	}
	wg.Wait()
}
