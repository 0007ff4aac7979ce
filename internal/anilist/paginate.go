package anilist

import (
	"context"
	"encoding/json"
	"fmt"
)

type pageInfo struct {
	HasNextPage bool `json:"hasNextPage"`
}

// FetchAll drives a paginated query across every page and returns the
// flattened items in page order. The query must expose exactly one paginated
// field in its response shape, reachable by descending through single-key
// objects; page and perPage variables are filled in here, so the supplied
// variables only need to leave them unset.
//
// Items are appended as-is with no deduplication; merging duplicates by
// entity ID is the caller's concern. Pages are 1-indexed and fetched until
// the API reports hasNextPage=false, or until the client's optional page cap
// trips (a defense against an API that never reports a final page).
func (c *Client) FetchAll(ctx context.Context, query string, variables map[string]any) ([]json.RawMessage, error) {
	vars := make(map[string]any, len(variables)+2)
	for key, value := range variables {
		vars[key] = value
	}
	vars["perPage"] = maxPageSize

	var items []json.RawMessage
	for page := 1; ; page++ {
		if c.pageCap > 0 && page > c.pageCap {
			return nil, fmt.Errorf("anilist: %w: fetched %d pages without a final page", ErrPageCapExceeded, c.pageCap)
		}
		vars["page"] = page

		data, err := c.Do(ctx, query, vars)
		if err != nil {
			return nil, err
		}
		if data == nil {
			// The query matched nothing; an empty sequence, not an error.
			return items, nil
		}

		info, pageItems, err := unwrapPage(data)
		if err != nil {
			return nil, err
		}
		items = append(items, pageItems...)

		if !info.HasNextPage {
			return items, nil
		}
	}
}

// unwrapPage descends through the response envelope until it reaches the
// object holding pageInfo, then splits that object into its page info and
// item list. Every level above the landmark must hold exactly one key (the
// response is a single thread of wrapping, never branching), and the landmark
// level exactly two: pageInfo and the data field.
func unwrapPage(data json.RawMessage) (pageInfo, []json.RawMessage, error) {
	node := data
	for {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(node, &fields); err != nil {
			return pageInfo{}, nil, fmt.Errorf("anilist: %w: decode envelope: %v", ErrMalformedPage, err)
		}

		if rawInfo, ok := fields["pageInfo"]; ok {
			if len(fields) != 2 {
				return pageInfo{}, nil, fmt.Errorf("anilist: %w: expected pageInfo plus one field, found %d fields", ErrMalformedPage, len(fields))
			}
			var info pageInfo
			if err := json.Unmarshal(rawInfo, &info); err != nil {
				return pageInfo{}, nil, fmt.Errorf("anilist: %w: decode pageInfo: %v", ErrMalformedPage, err)
			}
			for key, value := range fields {
				if key == "pageInfo" {
					continue
				}
				var items []json.RawMessage
				if err := json.Unmarshal(value, &items); err != nil {
					return pageInfo{}, nil, fmt.Errorf("anilist: %w: field %q is not a list: %v", ErrMalformedPage, key, err)
				}
				return info, items, nil
			}
		}

		switch len(fields) {
		case 0:
			return pageInfo{}, nil, fmt.Errorf("anilist: %w: reached empty object without finding pageInfo", ErrMalformedPage)
		case 1:
			for _, value := range fields {
				node = value
			}
		default:
			return pageInfo{}, nil, fmt.Errorf("anilist: %w: found %d fields while unwrapping", ErrMalformedPage, len(fields))
		}
	}
}
