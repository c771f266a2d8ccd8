package app

import "github.com/PolarBear-H/pokerpal/internal/apperr"

var (
	errRecordIDRequired = &apperr.Error{
		Message: "exactly one session id is required",
	}

	errNoRecordIDs = &apperr.Error{
		Message: "at least one session id is required",
	}

	errConfirmRequired = &apperr.Error{
		Message: "refusing to delete without confirmation: pass --yes when not running in a terminal",
	}

	errImportSource = &apperr.Error{
		Message: "import needs a file name, or - to read from standard input",
	}

	errBlindArgs = &apperr.Error{
		Message: "expected a small blind and a big blind, e.g. 'pokerpal blinds add 1 2'",
	}

	errInvalidBlindValue = &apperr.Error{
		Message: "blind %q is not a number",
	}
)
