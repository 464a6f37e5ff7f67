// Package cli implements logstats, an offline viewer for game server logs.
//
// parse   - print matches, per match rankings and parse errors
// ranking - print the global player ranking across every given log
package cli

import (
	"fmt"
	"io"
	"os"

	"gamelog-tracker/internal/logparse"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type parsedFile struct {
	name   string
	result logparse.Result
}

// NewRootCmd builds the logstats command tree writing tables to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "logstats",
		Short:         "Inspect game server logs without a database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parser activity to stderr")

	newLogger := func() zerolog.Logger {
		if !verbose {
			return zerolog.Nop()
		}

		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	rootCmd.AddCommand(parseCmd(newLogger))
	rootCmd.AddCommand(rankingCmd(newLogger))

	return rootCmd
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func parseFiles(paths []string, logger zerolog.Logger) ([]parsedFile, error) {
	files := make([]parsedFile, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		parser := logparse.NewMatchLogParser(logger.With().Str("file", path).Logger())
		files = append(files, parsedFile{name: path, result: parser.Execute(string(content))})
	}

	return files, nil
}
