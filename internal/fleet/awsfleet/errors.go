package awsfleet

import (
	"errors"
	"net"
	"strings"

	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/muurk/elysium/internal/fleet"
)

// AuthMessage is shown when a request could not be sent at all, which in
// practice almost always means the SSO session has expired.
const AuthMessage = "Please authenticate with aws-cli: aws login"

// classify converts an SDK error into a *fleet.SourceError.
func classify(err error, operation string) *fleet.SourceError {
	if err == nil {
		return nil
	}

	var srcErr *fleet.SourceError
	if errors.As(err, &srcErr) {
		return srcErr
	}

	// The service answered: permissions, throttling, unsupported region.
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.ErrorMessage()
		if msg == "" {
			msg = "request rejected by service"
		}
		return &fleet.SourceError{
			Type:      fleet.ErrTypeService,
			Operation: operation,
			Message:   msg,
			Code:      apiErr.ErrorCode(),
			Err:       err,
		}
	}

	if isDispatchFailure(err) {
		return &fleet.SourceError{
			Type:      fleet.ErrTypeDispatch,
			Operation: operation,
			Message:   AuthMessage,
			Err:       err,
		}
	}

	return &fleet.SourceError{
		Type:      fleet.ErrTypeOther,
		Operation: operation,
		Message:   operation + " failed",
		Err:       err,
	}
}

// isDispatchFailure reports whether err happened before a response was
// received: transport errors, DNS, and credential resolution.
func isDispatchFailure(err error) bool {
	var sendErr *smithyhttp.RequestSendError
	if errors.As(err, &sendErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	// Credential providers do not export typed errors.
	msg := err.Error()
	for _, marker := range []string{
		"failed to refresh cached credentials",
		"failed to retrieve credentials",
		"get identity",
		"token has expired",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
