// Package compare holds the in-memory structures and algorithms used to
// compare shows by their credited people: insertion-ordered rosters of
// staff/studios/voice actors, key intersection across rosters, and the
// shared-staff tally that ranks candidate shows against a seed show.
//
// The package is purely computational; fetching credit data is delegated to
// the caller through CreditsFunc so the engines can be exercised without a
// network.
package compare
