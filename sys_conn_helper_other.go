//go:build !linux

package ingress

import (
	"errors"
	"syscall"
)

// ReadBatch is emulated with one datagram per call on most other platforms, and not supported on Windows.
const batchSize = 1

var errNotSupported = errors.New("not supported on this platform")

func forceSetReceiveBuffer(syscall.RawConn, int) error { return errNotSupported }

func inspectReadBuffer(syscall.RawConn) (int, error) { return 0, errNotSupported }
