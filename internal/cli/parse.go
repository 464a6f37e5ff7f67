package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gamelog-tracker/internal/domain"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const timeFormat = "02/01/2006 15:04:05"

func parseCmd(newLogger func() zerolog.Logger) *cobra.Command {
	var errorsOnly bool

	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse log files and print matches with their rankings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := parseFiles(args, newLogger())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, file := range files {
				fmt.Fprintf(out, "== %s: %d matches, %d parse errors\n",
					file.name, len(file.result.Matches), len(file.result.ParseErrors))

				if !errorsOnly {
					if err := renderMatches(out, file.result.Matches); err != nil {
						return err
					}
					for _, match := range file.result.Matches {
						if err := renderMatchRanking(out, domain.NewMatchRanking(match)); err != nil {
							return err
						}
					}
				}

				for _, parseErr := range file.result.ParseErrors {
					fmt.Fprintln(out, parseErr)
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&errorsOnly, "errors-only", false, "only print parse errors")

	return cmd
}

func renderMatches(out io.Writer, matches []*domain.Match) error {
	table := tablewriter.NewWriter(out)
	table.Header("Match", "Start", "Duration", "Players", "Kills")

	for _, match := range matches {
		kills := 0
		names := make([]string, len(match.PlayerStats))
		for i, player := range match.PlayerStats {
			kills += player.Kills
			names[i] = player.PlayerName
		}

		if err := table.Append([]string{
			match.ID,
			match.StartTime.Format(timeFormat),
			matchDuration(match),
			strings.Join(names, ", "),
			strconv.Itoa(kills),
		}); err != nil {
			return fmt.Errorf("failed to render match %s: %w", match.ID, err)
		}
	}

	return table.Render()
}

func renderMatchRanking(out io.Writer, ranking domain.MatchRanking) error {
	fmt.Fprintf(out, "-- match %s\n", ranking.MatchID)

	table := tablewriter.NewWriter(out)
	table.Header("#", "Player", "Kills", "Deaths", "KDA")

	for _, row := range ranking.Ranking {
		if err := table.Append([]string{
			strconv.Itoa(row.Position),
			row.PlayerName,
			strconv.Itoa(row.Kills),
			strconv.Itoa(row.Deaths),
			strconv.FormatFloat(row.KDA, 'f', 2, 64),
		}); err != nil {
			return fmt.Errorf("failed to render ranking for %s: %w", ranking.MatchID, err)
		}
	}

	return table.Render()
}

func matchDuration(match *domain.Match) string {
	if !match.HasEnded() {
		return "-"
	}

	return strings.TrimSpace(humanize.RelTime(match.StartTime, *match.EndTime, "", ""))
}
