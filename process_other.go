//go:build !windows

package canape

import "go.uber.org/zap"

// killInstances is a no-op, CANape only runs on windows.
func killInstances(log *zap.Logger) error {
	return nil
}
