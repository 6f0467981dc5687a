package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dejo1307/repomap/internal/config"
	"github.com/dejo1307/repomap/internal/engine"
	"github.com/dejo1307/repomap/internal/extractors/all"
	"github.com/dejo1307/repomap/internal/renderers"
	"github.com/dejo1307/repomap/internal/renderers/markdown"
	"github.com/dejo1307/repomap/internal/report"
)

var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code. Every
// failure is written to stdout as the JSON error payload.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("REPOMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := newRootCmd(v)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if encErr := report.EncodeError(stdout, err); encErr != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repomap",
		Short: "Bounded, deterministic repository summarizer",
		Long: "repomap walks a source tree under hard budgets and prints one JSON document with " +
			"the directory tree, ranked top files, a symbol index, hotspot files and truncation notes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd, v)
		},
	}

	// Global flags.
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default "+config.DefaultFile+" if present)")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.String("log-format", "", "Log format: text or json")
	for _, name := range []string{"config", "log-level", "log-format"} {
		_ = v.BindPFlag(name, pf.Lookup(name))
	}

	f := rootCmd.Flags()
	f.String("repo-root", "", "Repository root to summarize (required)")
	addLimitFlags(f)
	f.StringArray("include", nil, "Glob allow-list for files (repeatable)")
	f.StringArray("exclude", nil, "Glob of paths to leave out (repeatable)")
	f.String("format", "json", "Output format: json or markdown")
	f.Bool("pretty", false, "Indent JSON output")
	f.VisitAll(func(fl *pflag.Flag) {
		_ = v.BindPFlag(fl.Name, fl)
	})

	rootCmd.AddCommand(newServeCmd(v))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func runSummarize(cmd *cobra.Command, v *viper.Viper) error {
	root := v.GetString("repo-root")
	if root == "" {
		return errors.New("repo_root is required")
	}

	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Log)

	eng := newEngine(cfg, logger, v.GetBool("pretty"))
	rep, err := eng.Run(cmd.Context(), root)
	if err != nil {
		return err
	}

	out, err := eng.Render(cmd.Context(), v.GetString("format"), rep)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func newEngine(cfg *config.Config, logger *slog.Logger, pretty bool) *engine.Engine {
	eng := engine.New(cfg, logger)
	for _, x := range all.Extractors() {
		eng.RegisterExtractor(x)
	}
	eng.RegisterRenderer(renderers.JSON{Pretty: pretty})
	eng.RegisterRenderer(markdown.New(markdownBudget(cfg.Limits)))
	return eng
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print repomap version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "repomap %s\n", version)
		},
	}
}
