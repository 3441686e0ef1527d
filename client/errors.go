package client

import (
	"fmt"
	"log/slog"
)

// UnsupportedMethodError reports a catalog mapping whose verb the transport
// contract does not cover. Raised at client construction, never at call
// time.
type UnsupportedMethodError struct {
	OperationID string
	Method      string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("operation %q: unsupported http verb %q", e.OperationID, e.Method)
}

func slogWarn(msg string) {
	slog.Warn(msg)
}
