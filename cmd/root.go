package cmd

import (
	"errors"
	"fmt"

	"manifestmerge/pkg/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const usageLine = "Usage: manifestmerge <manifest-dir> <output-file>"

// errUsage reports missing or extra positional arguments.
var errUsage = errors.New("expected <manifest-dir> and <output-file>")

// NewRootCmd builds the manifestmerge command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "manifestmerge <manifest-dir> <output-file>",
		Short: "Merge markdown file manifests into one document",
		Long: `manifestmerge reads every markdown manifest in a directory, in filename order,
and writes the combined list of {path, content} items as a single JSON or YAML
document for a bootstrap process to consume.

Each "## <path>" section of a manifest contributes one item. Its content is the
first fenced code block of the section, or the plain text up to the next "---".`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, v, args[0], args[1])
		},
	}

	flags := rootCmd.Flags()
	flags.String("config", "", "YAML config file with format, extension, ignore_file and debug keys")
	flags.StringP("format", "f", config.DefaultFormat, "Output format: json or yaml")
	flags.String("ext", config.DefaultExtension, "File name suffix of manifest documents")
	flags.String("ignore-file", "", "Extra ignore file applied before <manifest-dir>/.manifestignore")
	flags.Bool("debug", false, "Log diagnostics to stderr")

	_ = v.BindPFlag("format", flags.Lookup("format"))
	_ = v.BindPFlag("extension", flags.Lookup("ext"))
	_ = v.BindPFlag("ignore_file", flags.Lookup("ignore-file"))
	_ = v.BindPFlag("debug", flags.Lookup("debug"))

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command against os.Args and prints any failure to stderr.
func Execute() error {
	return execute(NewRootCmd())
}

func execute(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if errors.Is(err, errUsage) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), usageLine)
	} else {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}
