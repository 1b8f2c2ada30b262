package cmd

import (
	"fmt"

	"manifestmerge/pkg/config"
	"manifestmerge/pkg/logging"
	"manifestmerge/pkg/merge"
	"manifestmerge/pkg/version"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// runMerge resolves configuration, builds the logger and runs the merge.
func runMerge(cmd *cobra.Command, v *viper.Viper, manifestDir, output string) error {
	cfgFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("error reading flags: %w", err)
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Debug, "manifestmerge", version.Get().Version)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	args := merge.Arguments{
		ManifestDir: manifestDir,
		Output:      output,
		Extension:   cfg.Extension,
		Format:      cfg.Format,
		IgnoreFile:  cfg.IgnoreFile,
	}
	logger.Debug("Starting merge",
		zap.String("manifestDir", args.ManifestDir),
		zap.String("outputFile", args.Output),
		zap.String("format", args.Format),
		zap.String("extension", args.Extension))

	rep := merge.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err := merge.Run(args, rep, logger); err != nil {
		logger.Error("manifestmerge execution failed", zap.Error(err))
		return err
	}
	return nil
}
