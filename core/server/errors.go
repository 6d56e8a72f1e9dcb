package server

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

// ErrPortInUse is matched by bind failures caused by another listener
// already owning the address.
var ErrPortInUse = errors.New("port already in use")

// BindError reports a failure to bind the listening socket.
type BindError struct {
	Addr  string
	Err   error
	inUse bool
}

func (e *BindError) Error() string {
	if e.inUse {
		return fmt.Sprintf("bind %s: %v: %v", e.Addr, ErrPortInUse, e.Err)
	}
	return fmt.Sprintf("bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Is reports ErrPortInUse for address-in-use failures.
func (e *BindError) Is(target error) bool {
	return e.inUse && target == ErrPortInUse
}

func newBindError(addr string, err error) *BindError {
	return &BindError{Addr: addr, Err: err, inUse: isAddrInUse(err)}
}

func isAddrInUse(err error) bool {
	if errors.Is(err, syscall.EADDRINUSE) {
		return true
	}
	msg := strings.ToLower(err.Error())
	// windows reports WSAEADDRINUSE with its own wording
	return strings.Contains(msg, "address already in use") ||
		strings.Contains(msg, "only one usage of each socket address")
}
