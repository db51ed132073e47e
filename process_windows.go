package canape

import (
	"time"

	"github.com/roffe/gocanape/pkg/w32"
	"go.uber.org/zap"
)

var canapeExecutables = []string{"canape.exe", "canape64.exe"}

// killInstances terminates every running CANape so the new session
// starts from a clean state.
func killInstances(log *zap.Logger) error {
	procs, err := w32.FindProcesses(canapeExecutables...)
	if err != nil {
		return err
	}
	for _, p := range procs {
		log.Info("terminating CANape", zap.String("exe", p.Name), zap.Uint32("pid", p.PID))
		if err := w32.TerminateProcess(p.PID, 5*time.Second); err != nil {
			log.Warn("failed to terminate CANape", zap.Uint32("pid", p.PID), zap.Error(err))
		}
	}
	return nil
}
