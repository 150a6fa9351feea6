package services

import (
	"strings"

	"github.com/qispark/chatpick/internal/core/domain"
)

// nbspMarkup is literal non-breaking-space markup that can survive inside
// stored display strings. It is stripped before matching.
const nbspMarkup = "&nbsp;"

// IsSearchStringMatch reports whether every token of query matches searchText
// or, for non-room options, the participant name set.
//
// The query is normalised by stripping dots and turning commas into spaces,
// so "john.doe" finds "johndoe" and "john,doe" requires both halves. Empty
// tokens (from repeated spaces) trivially match; a query of only whitespace
// therefore matches everything, which mirrors how an empty query behaves.
func IsSearchStringMatch(query, searchText string, participantNames map[string]struct{}, isRoomLike bool) bool {
	normalized := strings.ReplaceAll(query, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", " ")

	valueToSearch := strings.ToLower(strings.ReplaceAll(searchText, nbspMarkup, ""))

	for _, word := range strings.Split(normalized, " ") {
		word = strings.ToLower(strings.TrimSpace(word))

		matched := strings.Contains(valueToSearch, word)
		if !matched && !isRoomLike {
			_, matched = participantNames[word]
		}
		if !matched {
			return false
		}
	}
	return true
}

// participantNameSet collects every lowercased login, first name, last name
// and display name of the given participants. Room-like options never consult
// it; rooms are discoverable by name, not member identity.
func participantNameSet(details []domain.PersonalDetail) map[string]struct{} {
	names := make(map[string]struct{})
	add := func(v string) {
		if v != "" {
			names[strings.ToLower(v)] = struct{}{}
		}
	}
	for i := range details {
		add(details[i].Login)
		add(details[i].FirstName)
		add(details[i].LastName)
		add(details[i].DisplayName)
	}
	return names
}
