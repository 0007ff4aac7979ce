package anilist

// GraphQL documents for every query the client issues. Paginated queries must
// keep exactly one paginated field in their response shape so FetchAll can
// unwrap them; see paginate.go.

// Ideally this would sort on [SEARCH_MATCH, POPULARITY_DESC], but the API
// does not honor the secondary key for shows sharing an exact title, so the
// sort is caller-selected instead.
const queryShowSearch = `
query ($search: String, $sort: MediaSort) {
    Media(search: $search, type: ANIME, sort: [$sort]) {
        id
        title {
            english
            romaji
        }
    }
}`

// Media.studios is not paginated even though StudioConnection carries
// pageInfo, so this goes through Do rather than FetchAll.
const queryShowStudios = `
query ($mediaId: Int) {
    Media(id: $mediaId) {
        studios {
            edges {
                node {
                    id
                    name
                }
                isMain
            }
        }
    }
}`

// The direct nodes field would also work but repeats a staff member once per
// role; edges keep one entry per credit with the role alongside.
const queryShowStaff = `
query ($mediaId: Int, $page: Int, $perPage: Int) {
    Media(id: $mediaId) {
        staff(sort: RELEVANCE, page: $page, perPage: $perPage) {
            pageInfo {
                hasNextPage
            }
            edges {
                node {
                    id
                    name {
                        full
                    }
                }
                role
            }
        }
    }
}`

const queryShowCharacters = `
query ($mediaId: Int, $language: StaffLanguage, $page: Int, $perPage: Int) {
    Media(id: $mediaId) {
        characters(sort: [ROLE, RELEVANCE], page: $page, perPage: $perPage) {
            pageInfo {
                hasNextPage
            }
            edges {
                node {
                    name {
                        full
                    }
                }
                role
                voiceActorRoles(language: $language) {
                    voiceActor {
                        id
                        name {
                            full
                        }
                    }
                    roleNotes
                }
            }
        }
    }
}`

const queryStaffAnime = `
query ($staffId: Int, $page: Int, $perPage: Int) {
    Staff(id: $staffId) {
        staffMedia(type: ANIME, sort: POPULARITY_DESC, page: $page, perPage: $perPage) {
            pageInfo {
                hasNextPage
            }
            nodes {
                id
                title {
                    english
                    romaji
                }
            }
        }
    }
}`

const queryUserByName = `
query ($name: String) {
    User(name: $name) {
        id
        name
    }
}`

// A MediaList object is a single list entry, hence the pagination.
const queryUserList = `
query ($userId: Int, $status: MediaListStatus, $page: Int, $perPage: Int) {
    Page (page: $page, perPage: $perPage) {
        pageInfo {
            hasNextPage
        }
        mediaList(userId: $userId, type: ANIME, status: $status, sort: SCORE_DESC) {
            media {
                id
                title {
                    english
                    romaji
                }
                season
                seasonYear
            }
            score
        }
    }
}`
