package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"anilens/internal/anilist"
	"anilens/internal/compare"
	"anilens/internal/stafftypes"
)

// showData bundles everything fetched for one show.
type showData struct {
	show    anilist.Show
	studios *compare.Roster
	staff   *compare.Roster
	voices  *compare.Roster
}

func newCompareCommand(cctx *commandContext) *cobra.Command {
	var top int
	var popularity bool
	var languageFlag string

	cmd := &cobra.Command{
		Use:   "compare SHOW...",
		Short: "Find studios, staff, and voice actors common to the given shows",
		Long: "Find all studios, production staff, and voice actors common to the given shows.\n" +
			"Given a single show, rank other shows by how many production staff they share\n" +
			"with it, then compare against the best match.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			client, logger, err := cctx.ensureClient()
			if err != nil {
				return err
			}

			if top <= 0 {
				top = cfg.Output.Top
			}
			languageInput := strings.TrimSpace(languageFlag)
			if languageInput == "" {
				languageInput = cfg.Output.Language
			}
			language, err := anilist.ParseStaffLanguage(languageInput)
			if err != nil {
				return err
			}

			sort := anilist.SortSearchMatch
			if popularity {
				sort = anilist.SortPopularityDesc
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			shows := make([]showData, 0, len(args)+1)
			for _, name := range args {
				found, err := client.SearchShow(ctx, name, sort)
				if err != nil {
					return err
				}
				if found == nil {
					return fmt.Errorf("could not find show matching %q", name)
				}
				data, err := gatherShow(ctx, client, *found, language)
				if err != nil {
					return err
				}
				shows = append(shows, data)
			}

			if len(shows) == 1 {
				match, done, err := findBestMatch(ctx, cmd, client, logger, cfg.AniList.StaffWarnThreshold, shows[0], top)
				if err != nil || done {
					return err
				}
				data, err := gatherShow(ctx, client, match, language)
				if err != nil {
					return err
				}
				shows = append(shows, data)
			}

			renderCommonSections(out, shows, language)
			logger.Debug("comparison complete", slog.Int64("requests", client.Requests()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "t", 0, "How many similar shows to list when given one show (default from config)")
	cmd.Flags().BoolVarP(&popularity, "popularity", "p", false,
		"Match the most popular show instead of the closest name match.\nHelps when another show shares the exact name.")
	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Voice-actor language to compare (default from config)")
	return cmd
}

func gatherShow(ctx context.Context, client *anilist.Client, show anilist.Show, language anilist.StaffLanguage) (showData, error) {
	studios, err := client.ShowStudios(ctx, show.ID)
	if err != nil {
		return showData{}, fmt.Errorf("fetch studios for %s: %w", show.Title, err)
	}
	staff, err := client.ShowStaff(ctx, show.ID)
	if err != nil {
		return showData{}, fmt.Errorf("fetch staff for %s: %w", show.Title, err)
	}
	voices, err := client.ShowVoiceActors(ctx, show.ID, language)
	if err != nil {
		return showData{}, fmt.Errorf("fetch voice actors for %s: %w", show.Title, err)
	}
	return showData{show: show, studios: studios, staff: staff, voices: voices}, nil
}

// findBestMatch runs the shared-staff ranking for a single seed show, prints
// the top matches, and returns the best one for the follow-up comparison.
// done is true when the command has nothing further to do (no other show
// shares any credits).
func findBestMatch(ctx context.Context, cmd *cobra.Command, client *anilist.Client, logger *slog.Logger, warnThreshold int, seed showData, top int) (anilist.Show, bool, error) {
	out := cmd.OutOrStdout()

	if warnThreshold > 0 && seed.staff.Len() > warnThreshold {
		fmt.Fprintf(out, "Searching for other shows worked on by the %d staff of %q; this may take a couple minutes...\n",
			seed.staff.Len(), seed.show.Title)
	}

	ranked, err := compare.RankBySharedStaff(ctx, seed.staff, client.StaffAnime, seed.show.ID, top)
	if errors.Is(err, compare.ErrNoSharedCredits) {
		fmt.Fprintf(out, "Staff for %s have not done any other shows.\n", seed.show.Title)
		return anilist.Show{}, true, nil
	}
	if err != nil {
		return anilist.Show{}, false, err
	}

	fmt.Fprintf(out, "Shows with most production staff in common with %s:\n", seed.show.Title)
	rows := make([][]string, 0, len(ranked))
	for _, candidate := range ranked {
		rows = append(rows, []string{fmt.Sprintf("%d", candidate.Count), candidate.Show.Title})
	}
	fmt.Fprintln(out, renderTable(out, []string{"Shared", "Show"}, rows, []columnAlignment{alignRight, alignLeft}))
	fmt.Fprintln(out)

	logger.Debug("similarity ranking complete",
		slog.Int("candidates", len(ranked)),
		slog.Int64("requests", client.Requests()))

	best := ranked[0].Show
	return anilist.Show{ID: best.ID, Title: best.Title}, false, nil
}

// renderCommonSections prints one table per entity kind listing everyone
// shared by all of the compared shows. The first show's credit order drives
// row order.
func renderCommonSections(out io.Writer, shows []showData, language anilist.StaffLanguage) {
	sections := []struct {
		name       string
		pick       func(showData) *compare.Roster
		categorize bool
	}{
		{"Studios", func(d showData) *compare.Roster { return d.studios }, false},
		{"Production Staff", func(d showData) *compare.Roster { return d.staff }, true},
		{fmt.Sprintf("Voice Actors (%s)", language.Display()), func(d showData) *compare.Roster { return d.voices }, false},
	}

	commonFound := false
	for _, section := range sections {
		rosters := make([]*compare.Roster, 0, len(shows))
		for _, data := range shows {
			rosters = append(rosters, section.pick(data))
		}
		commonIDs := compare.Intersect(rosters)
		if len(commonIDs) == 0 {
			continue
		}
		if commonFound {
			fmt.Fprintln(out)
		}
		commonFound = true

		headers := []string{section.name}
		for _, data := range shows {
			headers = append(headers, data.show.Title)
		}
		if section.categorize {
			headers = append(headers, "Category")
		}

		rows := make([][]string, 0, len(commonIDs))
		for _, id := range commonIDs {
			first, _ := rosters[0].Get(id)
			row := []string{first.Name}
			for _, roster := range rosters {
				entry, _ := roster.Get(id)
				row = append(row, strings.Join(entry.Roles, "\n"))
			}
			if section.categorize {
				row = append(row, string(categorizeEntry(first)))
			}
			rows = append(rows, row)
		}

		fmt.Fprintln(out, renderTable(out, headers, rows, nil))
	}

	if !commonFound {
		fmt.Fprintln(out, "No common studios/staff/VAs found!")
	}
}

// categorizeEntry buckets a staff member by their first categorizable role.
func categorizeEntry(entry compare.Entry) stafftypes.Category {
	for _, role := range entry.Roles {
		if category := stafftypes.Categorize(role); category != stafftypes.CategoryUnknown {
			return category
		}
	}
	return stafftypes.CategoryUnknown
}
