package crdesc

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/LdDl/crdesc/realizer"
	"github.com/pkg/errors"
)

var (
	vocabularyOnce sync.Once
)

// initVocabulary loads realizer's lexicon and domain vocabulary. Safe to call many times.
func initVocabulary() {
	vocabularyOnce.Do(func() {
		realizer.Load()
		addDomainVocabulary()
	})
}

// Generator produces descriptions of intersections in a single language.
// It is immutable once created and can be shared between goroutines.
type Generator struct {
	language realizer.Language
	realizer *realizer.Realizer
	phrases  *phrasebook
	logger   *slog.Logger
	metrics  *Metrics
}

// WithLanguage sets output language. Default is English.
func WithLanguage(lang realizer.Language) func(*Generator) {
	return func(gen *Generator) {
		gen.language = lang
	}
}

// WithLogger sets logger. Default logger discards everything.
func WithLogger(logger *slog.Logger) func(*Generator) {
	return func(gen *Generator) {
		if logger != nil {
			gen.logger = logger
		}
	}
}

// WithMetrics enables Prometheus collectors
func WithMetrics(metrics *Metrics) func(*Generator) {
	return func(gen *Generator) {
		gen.metrics = metrics
	}
}

// NewGenerator creates generator
//
// Example:
//
//	gen, err := crdesc.NewGenerator(crdesc.WithLanguage(realizer.French), crdesc.WithLogger(logger))
func NewGenerator(options ...func(*Generator)) (*Generator, error) {
	initVocabulary()
	gen := &Generator{
		language: realizer.English,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(gen)
	}
	phrases, ok := phrasebooks[gen.language]
	if !ok {
		return nil, &realizer.RealizationError{Language: gen.language, Lemma: string(gen.language), Reason: "unsupported language"}
	}
	r, err := realizer.New(gen.language)
	if err != nil {
		return nil, errors.Wrap(err, "Can't prepare realizer")
	}
	gen.realizer = r
	gen.phrases = phrases
	return gen, nil
}

// Language returns output language of the generator
func (gen *Generator) Language() realizer.Language {
	return gen.language
}

// Generate describes intersection in English
func Generate(intersection *Intersection) (*Description, error) {
	gen, err := NewGenerator()
	if err != nil {
		return nil, err
	}
	return gen.Generate(intersection)
}

// Generate builds introduction, branch, crossing and crosswalk descriptions of the intersection.
// The intersection is not modified.
func (gen *Generator) Generate(intersection *Intersection) (*Description, error) {
	st := time.Now()
	description, err := gen.generate(intersection)
	gen.metrics.observe(gen.language, description, err, time.Since(st))
	if err != nil {
		gen.logger.Error("Can't generate description", "error", err)
		return nil, err
	}
	gen.logger.Debug("Description generated", "language", string(gen.language), "branches", len(description.Branches), "crosswalks", len(description.Crosswalks), "elapsed", time.Since(st))
	return description, nil
}

func (gen *Generator) generate(intersection *Intersection) (*Description, error) {
	if intersection == nil {
		return nil, errors.New("Can't describe nil intersection")
	}
	names := gen.streetNames(intersection.Branches)

	introduction, err := gen.describeIntroduction(intersection.Branches, names)
	if err != nil {
		return nil, errors.Wrap(err, "Can't describe introduction")
	}

	description := &Description{
		Language:           gen.language,
		Introduction:       introduction,
		Branches:           make([]string, len(intersection.Branches)),
		Crossings:          make([]string, len(intersection.Branches)),
		CrossingPredicates: make([]string, len(intersection.Branches)),
		Crosswalks:         []CrosswalkDescription{},
	}
	for i, branch := range intersection.Branches {
		subject := gen.branchSubject(branch)
		text, err := gen.describeBranch(subject, names[i], planLanes(branch.Channels()))
		if err != nil {
			return nil, errors.Wrapf(err, "Can't describe branch '%s'", branch.Number)
		}
		description.Branches[i] = text

		predicate, err := gen.describeCrossing(planCrossing(branch.Crossing))
		if err != nil {
			return nil, errors.Wrapf(err, "Can't describe crossing of branch '%s'", branch.Number)
		}
		description.Crossings[i] = subject + " " + predicate
		description.CrossingPredicates[i] = predicate
		gen.logger.Debug("Branch described", "branch", branch.Number, "stages", branch.Crossing.Stages())
	}
	for _, junction := range intersection.Crosswalks() {
		description.Crosswalks = append(description.Crosswalks, CrosswalkDescription{
			JunctionID: junction.ID,
			Text:       gen.describeCrosswalk(junction),
		})
	}
	return description, nil
}

// branchName is street name of a branch for one generation pass
type branchName struct {
	name      StreetName
	defaulted bool
}

// streetNames substitutes language's placeholder for unnamed branches
func (gen *Generator) streetNames(branches []*Branch) []branchName {
	ans := make([]branchName, len(branches))
	for i, branch := range branches {
		if branch.StreetName == nil {
			ans[i] = branchName{name: gen.phrases.placeholder, defaulted: true}
			continue
		}
		ans[i] = branchName{name: *branch.StreetName}
	}
	return ans
}

// branchSubject is "Branch number <n>". Numeric ids are spelled out.
func (gen *Generator) branchSubject(branch *Branch) string {
	number := branch.Number
	if n, err := strconv.Atoi(number); err == nil && n >= 0 {
		number = gen.realizer.Cardinal(n, realizer.MASCULINE)
	}
	return fmt.Sprintf(gen.phrases.subjectTemplate, number)
}
