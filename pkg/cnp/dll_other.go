//go:build !windows

package cnp

import "go.uber.org/zap"

// Open loads the CANape API library. The library only exists on windows.
func Open(path string, log *zap.Logger) (API, error) {
	return nil, ErrUnsupportedPlatform
}
