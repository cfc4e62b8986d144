package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/julien-sobczak/ulysses-export/internal/core"
	"github.com/julien-sobczak/ulysses-export/internal/export"
	"github.com/julien-sobczak/ulysses-export/pkg/console"
)

var verboseInfo bool
var verboseDebug bool

var keepGroups bool
var skipMeta bool
var parallel int
var configPath string

var rootCmd = &cobra.Command{
	Use:   "ulysses-export <input> <output>",
	Short: "Export a Ulysses library as Markdown files",
	Long: `Convert every sheet of a Ulysses library into a Markdown file.

Sheets are renamed after their first heading and keep their creation
and modification dates. Groups are flattened unless --keep-groups is set.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := newConfig(cmd, args[0], args[1])
		if err != nil {
			return err
		}

		// The most verbose level wins when multiple flags are passed.
		if verboseInfo {
			core.CurrentLogger().SetVerboseLevel(core.VerboseInfo)
		}
		if verboseDebug {
			core.CurrentLogger().SetVerboseLevel(core.VerboseDebug)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		terminal := isTerminal(os.Stdout)
		progress := console.NewProgressLog(
			console.Every(config.ProgressEvery),
			// Verbose messages would break the rewritten line
			console.Interactive(terminal && core.CurrentLogger().Level() == core.VerboseOff),
		)

		report, err := export.NewExporter(config, export.WithProgress(progress)).Run(ctx)
		if report != nil && report.Failed() {
			fmt.Println(renderFailures(config.InputDir, report.Failures, terminal))
		}
		if err != nil {
			return err
		}
		if report.Failed() {
			return fmt.Errorf("%d sheets could not be exported", len(report.Failures))
		}
		return nil
	},
}

func init() {
	registerFlags(rootCmd.Flags())
}

func registerFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&keepGroups, "keep-groups", "", false, "create directories for each Ulysses group")
	flags.BoolVarP(&skipMeta, "skip-meta", "", false, "do not append keywords, attachments, create date and modify date to files")
	flags.BoolVarP(&verboseInfo, "verbose", "v", false, "enable verbose info output")
	flags.BoolVarP(&verboseDebug, "vv", "", false, "enable verbose debug output")
	flags.IntVarP(&parallel, "parallel", "t", 0, "number of sheets exported concurrently (default is the number of CPUs)")
	flags.StringVarP(&configPath, "config", "", "", "TOML configuration file")
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
