package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"anilens/internal/anilist"
	"anilens/internal/seasons"
)

func newSeasonsCommand(cctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seasons USERNAME SEASON...",
		Short: "Compare a user's scored shows across release seasons",
		Long: "Compare an AniList user's completed and watching shows across release seasons,\n" +
			"sorted by their score. Seasons are given as a year (\"2021\") or a quarter and\n" +
			"year (\"Winter 2021\"); quarters are Winter, Spring, Summer, Fall.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			selectors := make([]seasons.Season, 0, len(args)-1)
			for _, raw := range args[1:] {
				season, err := seasons.Parse(raw)
				if err != nil {
					return err
				}
				selectors = append(selectors, season)
			}

			client, logger, err := cctx.ensureClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			user, err := client.UserByName(ctx, username)
			if err != nil {
				return err
			}
			if user == nil {
				return fmt.Errorf("could not find AniList user %q", username)
			}
			logger.Debug("resolved user", slog.String("name", user.Name), slog.Int("id", user.ID))

			var entries []anilist.ListEntry
			for _, status := range []anilist.ListStatus{anilist.StatusCompleted, anilist.StatusCurrent} {
				list, err := client.UserList(ctx, user.ID, status)
				if err != nil {
					return fmt.Errorf("fetch %s list for %s: %w", status, user.Name, err)
				}
				entries = append(entries, list...)
			}

			headers := make([]string, 0, len(selectors))
			columns := make([][]anilist.ListEntry, 0, len(selectors))
			height := 0
			for _, season := range selectors {
				matched := seasons.Filter(entries, season)
				headers = append(headers, season.String())
				columns = append(columns, matched)
				if len(matched) > height {
					height = len(matched)
				}
			}

			rows := make([][]string, height)
			for i := range rows {
				row := make([]string, len(columns))
				for j, column := range columns {
					if i < len(column) {
						row[j] = formatScoredShow(column[i])
					}
				}
				rows[i] = row
			}

			fmt.Fprintln(out, renderTable(out, headers, rows, nil))
			fmt.Fprintf(out, "\nTotal queries: %d\n", client.Requests())
			return nil
		},
	}
	return cmd
}

func formatScoredShow(entry anilist.ListEntry) string {
	score := strconv.FormatFloat(entry.Score, 'f', -1, 64)
	return fmt.Sprintf("%3s  %s", score, entry.Title)
}
