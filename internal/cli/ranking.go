package cli

import (
	"fmt"
	"io"
	"strconv"

	"gamelog-tracker/internal/domain"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func rankingCmd(newLogger func() zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "ranking <file>...",
		Short: "Print the global player ranking across log files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := parseFiles(args, newLogger())
			if err != nil {
				return err
			}

			var matches []*domain.Match
			for _, file := range files {
				matches = append(matches, file.result.Matches...)
			}

			return renderGlobalRanking(cmd.OutOrStdout(), domain.NewGlobalRanking(domain.AggregatePlayers(matches)))
		},
	}
}

func renderGlobalRanking(out io.Writer, ranking []domain.GlobalPlayerRanking) error {
	table := tablewriter.NewWriter(out)
	table.Header("#", "Player", "Kills", "Deaths", "KDA", "Best Streak", "Matches")

	for i, row := range ranking {
		if err := table.Append([]string{
			humanize.Ordinal(i + 1),
			row.PlayerName,
			humanize.Comma(int64(row.TotalKills)),
			humanize.Comma(int64(row.TotalDeaths)),
			strconv.FormatFloat(row.OverallKDA, 'f', 2, 64),
			strconv.Itoa(row.BestStreak),
			strconv.Itoa(row.MatchesPlayed),
		}); err != nil {
			return fmt.Errorf("failed to render ranking row %s: %w", row.PlayerName, err)
		}
	}

	return table.Render()
}
