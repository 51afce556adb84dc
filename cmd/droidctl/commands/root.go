package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"droidctl/internal/adb"
	"droidctl/internal/app"
	"droidctl/internal/config"
)

var (
	home    string
	serial  string
	adbPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:           "droidctl",
		Short:         "Automate Android devices through adb",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := config.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}

			var err error
			cfg, err = config.Load(home)
			if err != nil {
				return err
			}
			if adbPath != "" {
				cfg.ADBPath = adbPath
			}
			if !adb.Available(cfg.ADBPath) {
				return fmt.Errorf("adb binary not found; install platform-tools or pass --adb")
			}

			zcfg := zap.NewProductionConfig()
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			logger = logger.With(zap.String("run", uuid.NewString()[:8]))

			appCtx = app.New(app.Config{Settings: cfg, Serial: serial, Log: logger})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.droidctl)")
	root.PersistentFlags().StringVarP(&serial, "serial", "s", "", "device serial (as shown by `adb devices`)")
	root.PersistentFlags().StringVar(&adbPath, "adb", "", "path to the adb binary (default: $PATH lookup)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		devicesCmd(), infoCmd(),
		tapCmd(), doubleTapCmd(), longPressCmd(), swipeCmd(),
		keyCmd(), backCmd(), homeCmd(), textCmd(),
		screenCmd(), screenshotCmd(), appCmd(),
	)
	return root.Execute()
}
