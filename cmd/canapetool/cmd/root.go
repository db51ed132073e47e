package cmd

import (
	"context"
	"fmt"

	canape "github.com/roffe/gocanape"
	"github.com/roffe/gocanape/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:          "canapetool",
	Short:        "Remote control for Vector CANape",
	Long:         `Open a CANape project and drive modules, calibration, recorders, scripts and measurement from the command line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lc := zap.NewProductionConfig()
		if debug {
			lc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = lc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return loadConfig(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the command line. main calls it once.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

const (
	flagProject       = "project"
	flagConfig        = "config"
	flagDebug         = "debug"
	flagClose         = "close"
	flagModal         = "modal"
	flagKeepInstances = "keep-instances"
)

var (
	logger  = zap.NewNop()
	cfg     = &config.Config{}
	cfgFile string
	debug   bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP(flagProject, "p", "", "CANape project directory")
	pf.StringVarP(&cfgFile, flagConfig, "c", "", "session file (yaml)")
	pf.BoolVarP(&debug, flagDebug, "d", false, "debug logging")
	pf.Bool(flagClose, false, "close CANape when done")
	pf.Bool(flagModal, false, "open CANape in modal mode")
	pf.Bool(flagKeepInstances, false, "do not terminate running CANape instances")
}

// loadConfig reads the session file, flags given on the command line
// take precedence.
func loadConfig(cmd *cobra.Command) error {
	c := &config.Config{}
	if cfgFile != "" {
		var err error
		if c, err = config.Load(cfgFile); err != nil {
			return err
		}
	}
	pf := cmd.Flags()
	if pf.Changed(flagProject) {
		c.Project, _ = pf.GetString(flagProject)
	}
	if pf.Changed(flagClose) {
		c.CloseCANape, _ = pf.GetBool(flagClose)
	}
	if pf.Changed(flagModal) {
		c.Modal, _ = pf.GetBool(flagModal)
	}
	if pf.Changed(flagKeepInstances) {
		c.KeepInstances, _ = pf.GetBool(flagKeepInstances)
	}
	cfg = c
	return nil
}

// run opens a session, creates the configured modules and runs action.
func run(cmd *cobra.Command, action canape.Action) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts := append(cfg.Options(), canape.WithLogger(logger))
	createModules := func(ctx context.Context, c *canape.CANape) error {
		_, err := cfg.CreateModules(c)
		return err
	}
	return canape.Run(cmd.Context(), cfg.Project, cfg.CloseCANape, canape.Chain(createModules, action), opts...)
}
