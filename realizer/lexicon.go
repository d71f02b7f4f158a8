package realizer

import (
	"strings"
	"sync"
)

// Language is a realization language code
type Language string

const (
	English = Language("en")
	French  = Language("fr")
)

// Languages returns supported languages
func Languages() []Language {
	return []Language{English, French}
}

func (lang Language) supported() bool {
	return lang == English || lang == French
}

type Gender uint16

const (
	MASCULINE = Gender(iota + 1)
	FEMININE
)

func (iotaIdx Gender) String() string {
	return [...]string{"m", "f"}[iotaIdx-1]
}

// Noun is a lexicon entry for a noun
type Noun struct {
	Gender Gender
	// Plural overrides regular inflection when not empty
	Plural string
}

// Adjective is a lexicon entry for an adjective. Empty forms are derived by regular inflection.
type Adjective struct {
	Feminine       string
	Plural         string
	FemininePlural string
	// Invariant adjectives never inflect (English participles)
	Invariant bool
}

type lexicon struct {
	sync.RWMutex
	nouns      map[Language]map[string]Noun
	adjectives map[Language]map[string]Adjective
	// words before which French elision is blocked (h aspiré and numerals)
	noElision map[string]struct{}
}

var (
	global = &lexicon{
		nouns:      make(map[Language]map[string]Noun),
		adjectives: make(map[Language]map[string]Adjective),
		noElision:  make(map[string]struct{}),
	}
	loadOnce sync.Once
)

// Load fills the process-wide lexicon with default vocabulary. It is safe to call it many times.
func Load() {
	loadOnce.Do(func() {
		for word, entry := range defaultNounsEnglish {
			AddNoun(English, word, entry)
		}
		for word, entry := range defaultNounsFrench {
			AddNoun(French, word, entry)
		}
		for word, entry := range defaultAdjectivesFrench {
			AddAdjective(French, word, entry)
		}
		global.Lock()
		for _, word := range []string{"huit", "huitième", "onze", "onzième", "hauteur", "haie", "halte", "hameau", "hangar"} {
			global.noElision[word] = struct{}{}
		}
		global.Unlock()
	})
}

// AddNoun adds (or replaces) a noun in the lexicon of given language
func AddNoun(lang Language, lemma string, entry Noun) {
	global.Lock()
	defer global.Unlock()
	if _, ok := global.nouns[lang]; !ok {
		global.nouns[lang] = make(map[string]Noun)
	}
	if entry.Gender == 0 {
		entry.Gender = MASCULINE
	}
	global.nouns[lang][strings.ToLower(lemma)] = entry
}

// AddAdjective adds (or replaces) an adjective in the lexicon of given language
func AddAdjective(lang Language, lemma string, entry Adjective) {
	global.Lock()
	defer global.Unlock()
	if _, ok := global.adjectives[lang]; !ok {
		global.adjectives[lang] = make(map[string]Adjective)
	}
	global.adjectives[lang][strings.ToLower(lemma)] = entry
}

func lookupNoun(lang Language, lemma string) (Noun, bool) {
	global.RLock()
	defer global.RUnlock()
	entry, ok := global.nouns[lang][strings.ToLower(lemma)]
	return entry, ok
}

func lookupAdjective(lang Language, lemma string) (Adjective, bool) {
	global.RLock()
	defer global.RUnlock()
	entry, ok := global.adjectives[lang][strings.ToLower(lemma)]
	return entry, ok
}

func blocksElision(word string) bool {
	global.RLock()
	defer global.RUnlock()
	_, ok := global.noElision[strings.ToLower(word)]
	return ok
}

var (
	defaultNounsEnglish = map[string]Noun{
		"avenue":       {},
		"boulevard":    {},
		"branch":       {},
		"bridge":       {},
		"intersection": {},
		"light":        {},
		"place":        {},
		"road":         {},
		"square":       {},
		"street":       {},
		"way":          {},
	}

	defaultNounsFrench = map[string]Noun{
		"allée":      {Gender: FEMININE},
		"avenue":     {Gender: FEMININE},
		"boulevard":  {Gender: MASCULINE},
		"branche":    {Gender: FEMININE},
		"carrefour":  {Gender: MASCULINE},
		"chemin":     {Gender: MASCULINE},
		"chaussée":   {Gender: FEMININE},
		"cours":      {Gender: MASCULINE},
		"esplanade":  {Gender: FEMININE},
		"feu":        {Gender: MASCULINE},
		"fois":       {Gender: FEMININE},
		"impasse":    {Gender: FEMININE},
		"passage":    {Gender: MASCULINE},
		"place":      {Gender: FEMININE},
		"pont":       {Gender: MASCULINE},
		"quai":       {Gender: MASCULINE},
		"rond-point": {Gender: MASCULINE, Plural: "ronds-points"},
		"route":      {Gender: FEMININE},
		"rue":        {Gender: FEMININE},
		"ruelle":     {Gender: FEMININE},
		"square":     {Gender: MASCULINE},
		"voie":       {Gender: FEMININE},
	}

	defaultAdjectivesFrench = map[string]Adjective{
		"piéton": {Feminine: "piétonne"},
	}
)
