// Package realizer turns small sentence plans (noun phrases, prepositional phrases, coordinations)
// into surface text with number/gender agreement, contractions and elision.
//
// Supported languages are English and French. Vocabulary comes from a process-wide lexicon which
// must be loaded once (see Load) and may be extended with AddNoun/AddAdjective.
package realizer

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type Determiner uint16

const (
	DETERMINER_NONE = Determiner(iota)
	DETERMINER_DEFINITE
	DETERMINER_INDEFINITE
	DETERMINER_NUMERAL // spelled out cardinal: "three lanes"
	DETERMINER_DIGITS  // cardinal written with digits: "3 branches"
)

func (iotaIdx Determiner) String() string {
	return [...]string{"none", "definite", "indefinite", "numeral", "digits"}[iotaIdx]
}

// NounPhrase is a plan for a noun phrase.
//
// Either Noun (a lexicon lemma) or Proper (verbatim text) has to be set.
// Modifier is a lemma qualifying the head: "bus lane" in English, "voie de bus" in French.
// Complement is appended verbatim after the head.
type NounPhrase struct {
	Determiner Determiner
	Count      int
	Noun       string
	Proper     string
	Modifier   string
	Complement string
}

// Realizer realizes sentence plans for one language. It holds no mutable state and can be shared.
type Realizer struct {
	lang Language
}

// New returns realizer for given language. The default lexicon is loaded if it hasn't been yet.
func New(lang Language) (*Realizer, error) {
	if !lang.supported() {
		return nil, &RealizationError{Language: lang, Lemma: string(lang), Reason: "unsupported language"}
	}
	Load()
	return &Realizer{lang: lang}, nil
}

// Language returns realizer's language
func (r *Realizer) Language() Language {
	return r.lang
}

func (r *Realizer) isPlural(np NounPhrase) bool {
	switch np.Determiner {
	case DETERMINER_NUMERAL, DETERMINER_DIGITS:
		if r.lang == French {
			return np.Count > 1
		}
		return np.Count != 1
	default:
		return np.Count > 1
	}
}

// NounPhrase realizes given noun phrase plan
func (r *Realizer) NounPhrase(np NounPhrase) (string, error) {
	if np.Noun == "" {
		if np.Proper == "" {
			return "", &RealizationError{Language: r.lang, Reason: "noun phrase without head"}
		}
		det := r.determiner(np, MASCULINE, false, np.Proper)
		return r.complete(attach(det, np.Proper), np.Complement), nil
	}

	entry, ok := lookupNoun(r.lang, np.Noun)
	if !ok {
		return "", &RealizationError{Language: r.lang, Lemma: np.Noun, Reason: "missing lexicon entry"}
	}
	plural := r.isPlural(np)
	head := strings.ToLower(np.Noun)
	if plural {
		head = r.pluralize(head, entry)
	}
	if np.Modifier != "" {
		if _, ok := lookupNoun(r.lang, np.Modifier); !ok {
			return "", &RealizationError{Language: r.lang, Lemma: np.Modifier, Reason: "missing lexicon entry"}
		}
		switch r.lang {
		case French:
			head = head + " " + r.preposition("de", strings.ToLower(np.Modifier))
		default:
			head = strings.ToLower(np.Modifier) + " " + head
		}
	}
	det := r.determiner(np, entry.Gender, plural, head)
	return r.complete(attach(det, head), np.Complement), nil
}

// PrepPhrase realizes prepositional phrase "<prep> <np>" applying contractions
func (r *Realizer) PrepPhrase(prep string, np NounPhrase) (string, error) {
	object, err := r.NounPhrase(np)
	if err != nil {
		return "", err
	}
	return r.preposition(prep, object), nil
}

// Coordinate joins already realized items with the language's "and"
func (r *Realizer) Coordinate(items ...string) string {
	conj := "and"
	if r.lang == French {
		conj = "et"
	}
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	}
	head := strings.Join(items[:len(items)-1], ", ")
	if r.lang == French {
		return head + " " + conj + " " + items[len(items)-1]
	}
	return head + ", " + conj + " " + items[len(items)-1]
}

// Cardinal spells out n agreeing with gender where the language requires it
func (r *Realizer) Cardinal(n int, gender Gender) string {
	return cardinal(r.lang, n, gender)
}

// Gender returns grammatical gender of the noun
func (r *Realizer) Gender(noun string) (Gender, error) {
	entry, ok := lookupNoun(r.lang, noun)
	if !ok {
		return 0, &RealizationError{Language: r.lang, Lemma: noun, Reason: "missing lexicon entry"}
	}
	return entry.Gender, nil
}

// Adjective inflects adjective for given gender and number
func (r *Realizer) Adjective(lemma string, gender Gender, plural bool) (string, error) {
	entry, ok := lookupAdjective(r.lang, lemma)
	if !ok {
		return "", &RealizationError{Language: r.lang, Lemma: lemma, Reason: "missing lexicon entry"}
	}
	lemma = strings.ToLower(lemma)
	if entry.Invariant || r.lang == English {
		return lemma, nil
	}
	feminine := entry.Feminine
	if feminine == "" {
		feminine = lemma
		if !strings.HasSuffix(lemma, "e") {
			feminine += "e"
		}
	}
	switch {
	case gender == FEMININE && plural:
		if entry.FemininePlural != "" {
			return entry.FemininePlural, nil
		}
		return pluralFrench(feminine), nil
	case gender == FEMININE:
		return feminine, nil
	case plural:
		if entry.Plural != "" {
			return entry.Plural, nil
		}
		return pluralFrench(lemma), nil
	}
	return lemma, nil
}

func (r *Realizer) determiner(np NounPhrase, gender Gender, plural bool, head string) string {
	switch np.Determiner {
	case DETERMINER_NUMERAL:
		return cardinal(r.lang, np.Count, gender)
	case DETERMINER_DIGITS:
		return strconv.Itoa(np.Count)
	case DETERMINER_DEFINITE:
		if r.lang == English {
			return "the"
		}
		switch {
		case plural:
			return "les"
		case r.elidable(head):
			return "l'"
		case gender == FEMININE:
			return "la"
		}
		return "le"
	case DETERMINER_INDEFINITE:
		if r.lang == English {
			if plural {
				return ""
			}
			if startsWithVowel(head, "aeiou") {
				return "an"
			}
			return "a"
		}
		switch {
		case plural:
			return "des"
		case gender == FEMININE:
			return "une"
		}
		return "un"
	}
	return ""
}

func (r *Realizer) preposition(prep, phrase string) string {
	if r.lang != French {
		return prep + " " + phrase
	}
	switch prep {
	case "de":
		switch {
		case strings.HasPrefix(phrase, "le "):
			return "du " + strings.TrimPrefix(phrase, "le ")
		case strings.HasPrefix(phrase, "les "):
			return "des " + strings.TrimPrefix(phrase, "les ")
		case strings.HasPrefix(phrase, "des "):
			return "de " + strings.TrimPrefix(phrase, "des ")
		case r.elidable(phrase):
			return "d'" + phrase
		}
	case "à":
		switch {
		case strings.HasPrefix(phrase, "le "):
			return "au " + strings.TrimPrefix(phrase, "le ")
		case strings.HasPrefix(phrase, "les "):
			return "aux " + strings.TrimPrefix(phrase, "les ")
		}
	}
	return prep + " " + phrase
}

// elidable reports whether a French word drops the vowel of preceding "le", "la", "de"
func (r *Realizer) elidable(phrase string) bool {
	if r.lang != French {
		return false
	}
	word := phrase
	if idx := strings.IndexAny(phrase, " -'"); idx > 0 {
		word = phrase[:idx]
	}
	if blocksElision(word) {
		return false
	}
	return startsWithVowel(word, "aeiouyéèêëàâîïôûh")
}

func (r *Realizer) pluralize(word string, entry Noun) string {
	if entry.Plural != "" {
		return entry.Plural
	}
	if r.lang == French {
		return pluralFrench(word)
	}
	return pluralEnglish(word)
}

func (r *Realizer) complete(phrase, complement string) string {
	if complement == "" {
		return phrase
	}
	return phrase + " " + complement
}

func attach(det, word string) string {
	switch {
	case det == "":
		return word
	case strings.HasSuffix(det, "'"):
		return det + word
	}
	return det + " " + word
}

func startsWithVowel(word, vowels string) bool {
	first, _ := utf8.DecodeRuneInString(strings.ToLower(word))
	return strings.ContainsRune(vowels, first)
}

func pluralEnglish(word string) string {
	switch {
	case strings.HasSuffix(word, "s"), strings.HasSuffix(word, "x"), strings.HasSuffix(word, "z"),
		strings.HasSuffix(word, "ch"), strings.HasSuffix(word, "sh"):
		return word + "es"
	case strings.HasSuffix(word, "y") && len(word) > 1 && !startsWithVowel(word[len(word)-2:], "aeiou"):
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}

func pluralFrench(word string) string {
	switch {
	case strings.HasSuffix(word, "s"), strings.HasSuffix(word, "x"), strings.HasSuffix(word, "z"):
		return word
	case strings.HasSuffix(word, "al"):
		return strings.TrimSuffix(word, "al") + "aux"
	case strings.HasSuffix(word, "eau"), strings.HasSuffix(word, "au"), strings.HasSuffix(word, "eu"):
		return word + "x"
	}
	return word + "s"
}
