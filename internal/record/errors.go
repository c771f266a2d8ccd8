package record

import "github.com/PolarBear-H/pokerpal/internal/apperr"

var (
	errInvalidNumber = &apperr.Error{
		Message: "%s must be a number, got %q",
	}

	errInvalidPlayerCount = &apperr.Error{
		Message: "player count %q is invalid: must be a whole number of at least %d",
	}

	errMissingStart = &apperr.Error{
		Message: "a session must have a start date",
	}

	errEndBeforeStart = &apperr.Error{
		Message: "end date (%s) must not be earlier than start date (%s)",
	}

	errRecordNotFound = &apperr.Error{
		Message: "no record matches id %q",
	}

	errAmbiguousID = &apperr.Error{
		Message: "id %q matches more than one record: use a longer prefix",
	}

	errInvalidBlindLevel = &apperr.Error{
		Message: "invalid blind level %s: blinds must be positive and the big blind must not be smaller than the small blind",
	}

	errDuplicateBlindLevel = &apperr.Error{
		Message: "blind level %s already exists",
	}
)
