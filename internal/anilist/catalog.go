package anilist

import (
	"context"
	"encoding/json"
	"fmt"

	"anilens/internal/compare"
)

// MediaSort selects how show search results are ordered.
type MediaSort string

const (
	// SortSearchMatch ranks by closeness of the string match.
	SortSearchMatch MediaSort = "SEARCH_MATCH"
	// SortPopularityDesc ranks by popularity, useful when several shows
	// share the exact same title.
	SortPopularityDesc MediaSort = "POPULARITY_DESC"
)

// ListStatus selects which of a user's lists to fetch.
type ListStatus string

const (
	StatusCompleted ListStatus = "COMPLETED"
	StatusCurrent   ListStatus = "CURRENT"
)

// Show identifies a show with its display title.
type Show struct {
	ID    int
	Title string
}

// User identifies an AniList user.
type User struct {
	ID   int
	Name string
}

// ListEntry is one show on a user's list, with the score they gave it and
// the season it aired.
type ListEntry struct {
	ID         int
	Title      string
	Season     string
	SeasonYear int
	Score      float64
}

type mediaTitle struct {
	English *string `json:"english"`
	Romaji  *string `json:"romaji"`
}

// display returns the english title, falling back to romaji. Empty when the
// show carries neither.
func (t mediaTitle) display() string {
	if t.English != nil {
		return *t.English
	}
	if t.Romaji != nil {
		return *t.Romaji
	}
	return ""
}

// SearchShow resolves an approximate show name to the best-matching show.
// Returns nil when nothing matched.
func (c *Client) SearchShow(ctx context.Context, search string, sort MediaSort) (*Show, error) {
	data, err := c.Do(ctx, queryShowSearch, map[string]any{"search": search, "sort": string(sort)})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var payload struct {
		Media *struct {
			ID    int        `json:"id"`
			Title mediaTitle `json:"title"`
		} `json:"Media"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("anilist: decode show search: %w", err)
	}
	if payload.Media == nil {
		return nil, nil
	}
	title := payload.Media.Title.display()
	if title == "" {
		return nil, fmt.Errorf("anilist: search %q returned untitled show %d", search, payload.Media.ID)
	}
	return &Show{ID: payload.Media.ID, Title: title}, nil
}

// ShowStudios returns a show's studios as a roster, main studios ordered
// before supporting ones. The API neither sorts by isMain nor paginates this
// connection, so it is a single request split into two passes.
func (c *Client) ShowStudios(ctx context.Context, showID int) (*compare.Roster, error) {
	data, err := c.Do(ctx, queryShowStudios, map[string]any{"mediaId": showID})
	if err != nil {
		return nil, err
	}

	main := compare.NewRoster()
	if data == nil {
		return main, nil
	}

	var payload struct {
		Media struct {
			Studios struct {
				Edges []struct {
					Node struct {
						ID   int    `json:"id"`
						Name string `json:"name"`
					} `json:"node"`
					IsMain bool `json:"isMain"`
				} `json:"edges"`
			} `json:"studios"`
		} `json:"Media"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("anilist: decode studios for show %d: %w", showID, err)
	}

	supporting := compare.NewRoster()
	for _, edge := range payload.Media.Studios.Edges {
		if edge.IsMain {
			main.Add(edge.Node.ID, edge.Node.Name, "Main")
		} else {
			supporting.Add(edge.Node.ID, edge.Node.Name, "Supporting")
		}
	}
	main.Append(supporting)
	return main, nil
}

// ShowStaff returns a show's production staff as a roster, merging staff
// credited under several roles into one entry.
func (c *Client) ShowStaff(ctx context.Context, showID int) (*compare.Roster, error) {
	items, err := c.FetchAll(ctx, queryShowStaff, map[string]any{"mediaId": showID})
	if err != nil {
		return nil, err
	}

	roster := compare.NewRoster()
	for _, item := range items {
		var edge struct {
			Node struct {
				ID   int `json:"id"`
				Name struct {
					Full string `json:"full"`
				} `json:"name"`
			} `json:"node"`
			Role string `json:"role"`
		}
		if err := json.Unmarshal(item, &edge); err != nil {
			return nil, fmt.Errorf("anilist: decode staff edge for show %d: %w", showID, err)
		}
		roster.Add(edge.Node.ID, edge.Node.Name.Full, edge.Role)
	}
	return roster, nil
}

// ShowVoiceActors returns a show's voice actors for the given language as a
// roster. Each role reads like "MAIN Edward Elric" with any role notes
// appended, and actors voicing several characters keep one merged entry.
func (c *Client) ShowVoiceActors(ctx context.Context, showID int, language StaffLanguage) (*compare.Roster, error) {
	items, err := c.FetchAll(ctx, queryShowCharacters, map[string]any{
		"mediaId":  showID,
		"language": string(language),
	})
	if err != nil {
		return nil, err
	}

	roster := compare.NewRoster()
	for _, item := range items {
		var edge struct {
			Node struct {
				Name struct {
					Full string `json:"full"`
				} `json:"name"`
			} `json:"node"`
			Role            string `json:"role"`
			VoiceActorRoles []struct {
				VoiceActor struct {
					ID   int `json:"id"`
					Name struct {
						Full string `json:"full"`
					} `json:"name"`
				} `json:"voiceActor"`
				RoleNotes *string `json:"roleNotes"`
			} `json:"voiceActorRoles"`
		}
		if err := json.Unmarshal(item, &edge); err != nil {
			return nil, fmt.Errorf("anilist: decode character edge for show %d: %w", showID, err)
		}

		for _, vaRole := range edge.VoiceActorRoles {
			role := edge.Role + " " + edge.Node.Name.Full
			if vaRole.RoleNotes != nil {
				role += " " + *vaRole.RoleNotes
			}
			roster.Add(vaRole.VoiceActor.ID, vaRole.VoiceActor.Name.Full, role)
		}
	}
	return roster, nil
}

// StaffAnime returns the shows a staff member holds production credits on,
// deduplicated, in the API's popularity order. Returning ID and title
// together saves a lookup per candidate later.
func (c *Client) StaffAnime(ctx context.Context, staffID int) ([]compare.ShowRef, error) {
	items, err := c.FetchAll(ctx, queryStaffAnime, map[string]any{"staffId": staffID})
	if err != nil {
		return nil, err
	}

	seen := make(map[compare.ShowRef]struct{}, len(items))
	credits := make([]compare.ShowRef, 0, len(items))
	for _, item := range items {
		var node struct {
			ID    int        `json:"id"`
			Title mediaTitle `json:"title"`
		}
		if err := json.Unmarshal(item, &node); err != nil {
			return nil, fmt.Errorf("anilist: decode media node for staff %d: %w", staffID, err)
		}
		ref := compare.ShowRef{ID: node.ID, Title: node.Title.display()}
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		credits = append(credits, ref)
	}
	return credits, nil
}

// UserByName resolves an AniList username. Returns nil when no such user
// exists.
func (c *Client) UserByName(ctx context.Context, name string) (*User, error) {
	data, err := c.Do(ctx, queryUserByName, map[string]any{"name": name})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var payload struct {
		User *struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"User"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("anilist: decode user lookup: %w", err)
	}
	if payload.User == nil {
		return nil, nil
	}
	return &User{ID: payload.User.ID, Name: payload.User.Name}, nil
}

// UserList fetches a user's anime list entries with the given status, scored
// highest first. The API occasionally repeats entries across pages, so
// duplicates are dropped by show ID keeping the first occurrence.
func (c *Client) UserList(ctx context.Context, userID int, status ListStatus) ([]ListEntry, error) {
	items, err := c.FetchAll(ctx, queryUserList, map[string]any{
		"userId": userID,
		"status": string(status),
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(items))
	entries := make([]ListEntry, 0, len(items))
	for _, item := range items {
		var listEntry struct {
			Media struct {
				ID         int        `json:"id"`
				Title      mediaTitle `json:"title"`
				Season     string     `json:"season"`
				SeasonYear int        `json:"seasonYear"`
			} `json:"media"`
			Score float64 `json:"score"`
		}
		if err := json.Unmarshal(item, &listEntry); err != nil {
			return nil, fmt.Errorf("anilist: decode list entry for user %d: %w", userID, err)
		}
		if _, dup := seen[listEntry.Media.ID]; dup {
			continue
		}
		seen[listEntry.Media.ID] = struct{}{}
		entries = append(entries, ListEntry{
			ID:         listEntry.Media.ID,
			Title:      listEntry.Media.Title.display(),
			Season:     listEntry.Media.Season,
			SeasonYear: listEntry.Media.SeasonYear,
			Score:      listEntry.Score,
		})
	}
	return entries, nil
}
