package services

import (
	"strings"

	"github.com/qispark/chatpick/internal/core/domain"
)

// buildSearchText produces the denormalised blob the string matcher runs
// against.
//
// Direct conversations index each participant's display name plus their login
// with dots removed, and the raw participant logins when a report is present.
// Room-like conversations deliberately exclude participant identity (rooms
// are found by name): instead the display name and room subtitle are exploded
// into individual characters and comma-separated segments, which yields a
// coarse, order-independent matchable corpus.
func buildSearchText(report *domain.Report, details []domain.PersonalDetail, subtitle string, isRoomLike bool) string {
	var terms []string

	if !isRoomLike {
		for i := range details {
			terms = append(terms, details[i].DisplayNameOrLogin())
			terms = append(terms, strings.ReplaceAll(details[i].Login, ".", ""))
		}
	}

	if report != nil {
		if isRoomLike {
			terms = append(terms, explode(report.ReportName)...)
			terms = append(terms, explode(subtitle)...)
		} else {
			terms = append(terms, report.Participants...)
		}
	}

	return strings.Join(dedupe(terms), " ")
}

// explode splits a value into its individual characters plus its
// comma-separated segments.
func explode(value string) []string {
	var parts []string
	for _, r := range value {
		parts = append(parts, string(r))
	}
	parts = append(parts, strings.Split(value, ",")...)
	return parts
}

// dedupe removes exact duplicates and empties, preserving first occurrence.
func dedupe(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}
	return out
}
