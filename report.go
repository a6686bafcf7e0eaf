package fmtspec

import (
	"sync/atomic"
)

var invalidArgumentHandler atomic.Pointer[func(error)]

// SetInvalidArgumentHandler installs fn as the receiver of invalid-argument
// reports: an over-long width numeral or an out-of-range width override.
// The offending width has already been clamped to [MaxWidth] when fn runs,
// and rendering continues afterwards. A nil fn restores the default, which
// logs a warning.
func SetInvalidArgumentHandler(fn func(error)) {
	if fn == nil {
		invalidArgumentHandler.Store(nil)
		return
	}
	invalidArgumentHandler.Store(&fn)
}

func reportInvalidArgument(err error) {
	if fn := invalidArgumentHandler.Load(); fn != nil {
		(*fn)(err)
		return
	}
	pkgLogger().Warn("fmtspec: invalid argument", "error", err)
}

func reportWriteError(err error) {
	pkgLogger().Error("fmtspec: write failed", "error", err)
}
