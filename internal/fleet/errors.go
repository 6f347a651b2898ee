package fleet

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a data source failure
type ErrorType int

const (
	// ErrTypeDispatch indicates the request never reached the service
	// (no network, expired or missing credentials).
	ErrTypeDispatch ErrorType = iota
	// ErrTypeService indicates the service answered with an error
	ErrTypeService
	// ErrTypeOther indicates any other failure
	ErrTypeOther
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeDispatch:
		return "Dispatch Failure"
	case ErrTypeService:
		return "Service Error"
	case ErrTypeOther:
		return "Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// SourceError is returned by data source constructors and loads.
type SourceError struct {
	Type      ErrorType // Category of error
	Operation string    // Remote operation that failed, e.g. "ListComponents"
	Message   string    // Human-readable guidance
	Code      string    // Service error code, when Type is ErrTypeService
	Err       error     // Underlying error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Code)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, msg)
}

// Unwrap returns the underlying error for error chain inspection
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Troubleshooting returns hints for the user, shown below the error when the
// dashboard cannot start.
func (e *SourceError) Troubleshooting() []string {
	switch e.Type {
	case ErrTypeDispatch:
		return []string{
			"Run 'aws sso login --profile <profile>' or 'aws login' to refresh credentials",
			"Check that the profile exists in ~/.aws/config",
			"Check network connectivity to the AWS endpoints",
		}
	case ErrTypeService:
		return []string{
			"Check that the profile has greengrass:List* and iot:ListThingGroups permissions",
			"Check that Greengrass V2 is available in the selected region",
		}
	default:
		return nil
	}
}

// IsDispatch reports whether err is a SourceError of type ErrTypeDispatch.
func IsDispatch(err error) bool {
	var se *SourceError
	return errors.As(err, &se) && se.Type == ErrTypeDispatch
}
