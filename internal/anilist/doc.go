// Package anilist provides the minimal AniList GraphQL client the CLI needs.
//
// Two layers make up the client. The request primitive posts a single
// query/variables document, transparently waits out rate limiting, and hands
// back the raw data payload. The pagination layer drives the primitive across
// every page of a paginated query, structurally unwrapping the response until
// it finds the pageInfo landmark, so new query shapes need no code changes as
// long as they return exactly one paginated field.
//
// On top of those sit typed lookups for the specific queries the commands
// issue: show search, studio/staff/voice-actor rosters, a staff member's
// credited works, and user list retrieval. Query text lives in queries.go;
// nothing in this package builds GraphQL dynamically.
package anilist
