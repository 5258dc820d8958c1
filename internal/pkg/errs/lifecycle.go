package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrRemoteRejection   = errors.New("remote store rejected transition")
	ErrNetwork           = errors.New("network failure")
	ErrNoAvailableAtm    = errors.New("no available atm")
)

// InvalidTransitionError is returned before any remote call when the requested
// edge is not part of the order status graph. It signals a caller bug and must
// not be retried.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %q -> %q", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// RemoteRejectionError is returned when the authoritative store refused a
// transition, usually because the order moved on concurrently. Callers should
// refresh the order before deciding to retry.
type RemoteRejectionError struct {
	OrderID string
	Reason  string
	Cause   error
}

func NewRemoteRejectionError(orderID, reason string) *RemoteRejectionError {
	return &RemoteRejectionError{OrderID: orderID, Reason: reason}
}

func NewRemoteRejectionErrorWithCause(orderID, reason string, cause error) *RemoteRejectionError {
	return &RemoteRejectionError{OrderID: orderID, Reason: reason, Cause: cause}
}

func (e *RemoteRejectionError) Error() string {
	msg := fmt.Sprintf("%s: order %s: %s", ErrRemoteRejection, e.OrderID, sanitize(e.Reason))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *RemoteRejectionError) Unwrap() error {
	return ErrRemoteRejection
}

// NetworkError wraps a transport failure (connection loss, timeout) while
// talking to a remote collaborator. Retrying with backoff is left to callers.
type NetworkError struct {
	Operation string
	Cause     error
}

func NewNetworkError(operation string, cause error) *NetworkError {
	return &NetworkError{Operation: operation, Cause: cause}
}

func (e *NetworkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrNetwork, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrNetwork, e.Operation)
}

func (e *NetworkError) Unwrap() error {
	return ErrNetwork
}

// NoAvailableAtmError is returned when neither the address preferences nor the
// active ATM sample produced a candidate.
type NoAvailableAtmError struct {
	AddressID string
}

func NewNoAvailableAtmError(addressID string) *NoAvailableAtmError {
	return &NoAvailableAtmError{AddressID: addressID}
}

func (e *NoAvailableAtmError) Error() string {
	return fmt.Sprintf("%s: address %s", ErrNoAvailableAtm, e.AddressID)
}

func (e *NoAvailableAtmError) Unwrap() error {
	return ErrNoAvailableAtm
}
