package ranking

import (
	"errors"
	"fmt"
)

// ErrSemanticUnavailable is matched by errors.Is for any failure of the embedding capability.
var ErrSemanticUnavailable = errors.New("semantic matcher unavailable")

// errNoEmbedder is the cause recorded when a Scorer has no embedding capability configured.
var errNoEmbedder = errors.New("no embedder configured")

// SemanticUnavailableError reports that the embedding capability could not produce
// vectors. It is the single failure mode of semantic scoring.
type SemanticUnavailableError struct {
	Cause error
}

func (e *SemanticUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", ErrSemanticUnavailable, e.Cause)
	}
	return ErrSemanticUnavailable.Error()
}

func (e *SemanticUnavailableError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrSemanticUnavailable) true regardless of the cause.
func (e *SemanticUnavailableError) Is(target error) bool {
	return target == ErrSemanticUnavailable
}

func unavailable(cause error) error {
	return &SemanticUnavailableError{Cause: cause}
}
