package ffi

import (
	"sync"

	"github.com/halcyoncore/wallet-bridge/errors"
)

var (
	lastErrMu sync.Mutex
	lastErr   errors.Record
)

func setLastError(err error) {
	rec := errors.Map(err)
	lastErrMu.Lock()
	lastErr = rec
	lastErrMu.Unlock()
}

// LastError returns the record of the most recent boundary failure, or the
// zero record if none has occurred since the last clear. The slot is
// errno-style: successes do not clear it.
func LastError() errors.Record {
	lastErrMu.Lock()
	defer lastErrMu.Unlock()
	return lastErr
}

// ClearLastError resets the failure slot to the zero record.
func ClearLastError() {
	lastErrMu.Lock()
	lastErr = errors.Record{}
	lastErrMu.Unlock()
}
