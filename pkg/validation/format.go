// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-schedule/pkg/constants"
)

// Log encoders understood by the logging package.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	return oneOf("output format", format, constants.OutputFormatPretty, constants.OutputFormatCSV)
}

// ValidateLogFormat checks if the log format is one of the supported encoders.
func ValidateLogFormat(format string) error {
	return oneOf("log format", format, LogFormatJSON, LogFormatConsole)
}

// oneOf matches case-sensitively; configuration values are not normalised.
func oneOf(what, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("expected %s of %s, got %s", what, strings.Join(allowed, " or "), value)
}
