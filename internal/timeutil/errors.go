package timeutil

import "github.com/PolarBear-H/pokerpal/internal/apperr"

var (
	errEmptyDate = &apperr.Error{
		Message: "a date is required",
	}

	errParsingDate = &apperr.Error{
		Message: "unable to understand date %q",
	}
)
