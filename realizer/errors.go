package realizer

import "fmt"

// RealizationError is returned when a phrase can't be realized, e.g. because of missing lexicon entry
type RealizationError struct {
	Language Language
	Lemma    string
	Reason   string
}

func (err *RealizationError) Error() string {
	return fmt.Sprintf("Can't realize '%s' (lang: %s): %s", err.Lemma, err.Language, err.Reason)
}
