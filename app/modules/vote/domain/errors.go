package votedomain

import (
	"fmt"

	"github.com/fantakl/votes-admin/pkg/apperrors"
)

var (
	// ErrMatchAlreadyStarted is returned when votes already exist for the selection.
	ErrMatchAlreadyStarted = fmt.Errorf("match already started: %w", apperrors.ErrConflict)

	// ErrMatchNotStarted rejects a save before the explicit start step.
	ErrMatchNotStarted = apperrors.NewValidationError("", "start match first")
)
