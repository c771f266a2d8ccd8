package store

import "github.com/PolarBear-H/pokerpal/internal/apperr"

var (
	errAlreadyRunning = &apperr.Error{
		Message: "is pokerpal already running? Only one instance can use the database at a time",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown store driver %q: expected bolt, sqlite or memory",
	}

	errRead = &apperr.Error{
		Message:   "failed to read %s from the store",
		Retryable: true,
	}

	errPersist = &apperr.Error{
		Message:   "failed to save %s: your last change was not applied, please try again",
		Retryable: true,
	}

	errCorrupt = &apperr.Error{
		Message: "stored %s could not be decoded",
	}

	errImport = &apperr.Error{
		Message: "import failed: nothing was changed",
	}

	errNotRecordArray = &apperr.Error{
		Message: "expected a JSON array of session records",
	}

	errInvalidRecord = &apperr.Error{
		Message: "record %d",
	}

	errInvalidField = &apperr.Error{
		Message: "invalid %s: %v",
	}

	errMissingField = &apperr.Error{
		Message: "missing %s",
	}
)
