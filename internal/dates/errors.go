package dates

import (
	"errors"
	"fmt"
)

// Adapter operations, used as AdapterError.Op.
const (
	OpParseDate           = "parse_date"
	OpExtractDateFromTask = "extract_date_from_task"
)

var (
	ErrEmptyResponse  = errors.New("model returned an empty response")
	ErrMalformedReply = errors.New("model reply does not match the expected format")
)

// ConfigurationError reports a client that cannot be built, usually for a
// missing credential.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return "configuration error: " + e.Reason
	}
	return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// AdapterError reports a failed exchange with the model or a reply of the
// wrong shape. Input is the phrase or task text that was sent.
type AdapterError struct {
	Op    string
	Input string
	Err   error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Input, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

// DateParseError reports model text that is not a strict YYYY-MM-DD date.
type DateParseError struct {
	Input string
	Raw   string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("failed to parse date for %q: model returned invalid ISO date %q", e.Input, e.Raw)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
