package workflow

import (
	"fmt"

	"ats-backend/models"
)

// InvalidTransitionError is a caller-facing rejection of a stage change; the
// application is left untouched.
type InvalidTransitionError struct {
	From models.ApplicationStage
	To   models.ApplicationStage
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("stage transition from %q to %q is not allowed", e.From, e.To)
}

// NotFoundError covers failed lookups of any workflow entity, including
// invalid or expired response tokens.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%v not found (%v)", e.Entity, e.Key)
}

func IsDomainError(err error) bool {
	switch err.(type) {
	case InvalidTransitionError, NotFoundError:
		return true
	}
	return false
}
