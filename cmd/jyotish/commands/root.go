// Package commands implements the CLI commands for the jyotish calculator.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/jyotish/internal/build"
	"go.trai.ch/jyotish/internal/core/domain"
)

// CLI represents the command line interface for jyotish.
type CLI struct {
	app     Application
	metrics MetricsWriter
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	GetFixedBirthData(ctx context.Context, req domain.BirthRequest) (*domain.FixedBirthData, error)
	MatchBirths(ctx context.Context, groom, bride domain.BirthRequest) (*domain.MatchResult, error)
	CalculateCompatibility(ctx context.Context, groom, bride domain.MatchProfile) (*domain.CompatibilityResult, error)
	GetCalendarDay(ctx context.Context, req domain.CalendarRequest) (*domain.CalendarDay, error)
}

// MetricsWriter dumps collected metrics in a text exposition format.
type MetricsWriter interface {
	WriteText(w io.Writer) error
}

// Option configures a CLI.
type Option func(*CLI)

// WithMetrics enables the --metrics flag, which dumps m to stderr after a command.
func WithMetrics(m MetricsWriter) Option {
	return func(c *CLI) {
		c.metrics = m
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "jyotish",
		Short:         "Vedic birth charts, dashas and compatibility scores",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")
	rootCmd.PersistentFlags().Bool("metrics", false, "Dump cache metrics to stderr after the command")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPostRunE = c.dumpMetrics

	rootCmd.AddCommand(c.newChartCmd())
	rootCmd.AddCommand(c.newDashaCmd())
	rootCmd.AddCommand(c.newMatchCmd())
	rootCmd.AddCommand(c.newCalendarCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) dumpMetrics(cmd *cobra.Command, _ []string) error {
	enabled, _ := cmd.Flags().GetBool("metrics")
	if !enabled || c.metrics == nil {
		return nil
	}
	return c.metrics.WriteText(cmd.ErrOrStderr())
}

func jsonMode(cmd *cobra.Command) bool {
	enabled, _ := cmd.Flags().GetBool("json")
	return enabled
}
