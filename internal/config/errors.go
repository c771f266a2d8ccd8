package config

import "github.com/PolarBear-H/pokerpal/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errReadEnvFile = &apperr.Error{
		Message: "reading environment file %s failed",
	}

	errInvalidDriver = &apperr.Error{
		Message: "unknown store driver %q (must be one of %s)",
	}

	errInvalidCurrency = &apperr.Error{
		Message: "display currency must be an ISO 4217 code such as USD, got %q",
	}

	errInvalidLanguage = &apperr.Error{
		Message: "display language must be a BCP 47 tag such as en or zh-CN, got %q",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level %q (must be one of %s)",
	}

	errPrompt = &apperr.Error{
		Message: "setup prompt failed",
	}
)
