package crdesc

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrDescriptionMismatch is returned by exporters when description fragments don't line up with the intersection
	ErrDescriptionMismatch = errors.New("Description doesn't match intersection")
)

// ModelIntegrityError is returned when the model can't be built: an identifier can't be resolved or a field is malformed
type ModelIntegrityError struct {
	// Collection the faulty entity belongs to: pedestrian_nodes, junctions, ways, branches, center
	Collection string
	// ID of the faulty entity
	ID string
	// Reference is an unresolved identifier, if that is the problem
	Reference string
	Reason    string
}

func (err *ModelIntegrityError) Error() string {
	if err.Reference != "" {
		return fmt.Sprintf("Model integrity: %s '%s' references missing entity '%s' (%s)", err.Collection, err.ID, err.Reference, err.Reason)
	}
	return fmt.Sprintf("Model integrity: %s '%s': %s", err.Collection, err.ID, err.Reason)
}
