package match

import (
	"math"
	"sort"
	"strings"

	"github.com/kailas-cloud/sysdisco/internal/domain/keyword"
	"github.com/kailas-cloud/sysdisco/internal/domain/system"
)

// DefaultMaxResults is the result cap used when the caller passes none.
const DefaultMaxResults = 5

// Result is a system document recommended for a set of keywords.
type Result struct {
	systemID    string
	systemName  string
	score       int
	matchedTags []string
}

// NewResult builds a Result (test and hydration helper).
func NewResult(systemID, systemName string, score int, matchedTags []string) Result {
	return Result{systemID: systemID, systemName: systemName, score: score, matchedTags: matchedTags}
}

// SystemID returns the matched system's identifier.
func (r Result) SystemID() string { return r.systemID }

// SystemName returns the matched system's name.
func (r Result) SystemName() string { return r.systemName }

// RelevanceScore is the share of extracted keywords found in the system's tags, 1-100.
func (r Result) RelevanceScore() int { return r.score }

// MatchedTags returns the lowercased matching tags in first-seen order.
func (r Result) MatchedTags() []string { return r.matchedTags }

// Systems scores every system by how many of its tags appear in keywords.
//
// Matching is case-insensitive. Systems without a matched tag are dropped.
// The score denominator is the number of distinct keywords, so extra
// unrelated tags never lower a score. Results are sorted by score
// descending with ties in input order, then capped at maxResults
// (DefaultMaxResults when maxResults <= 0).
func Systems(keywords []keyword.Keyword, systems []system.Document, maxResults int) []Result {
	if len(keywords) == 0 || len(systems) == 0 {
		return nil
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	set := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		set[strings.ToLower(k.Keyword)] = struct{}{}
	}
	total := len(set)

	var out []Result
	for i := range systems {
		sys := &systems[i]
		matched := matchTags(sys.Tags(), set)
		if len(matched) == 0 {
			continue
		}
		out = append(out, Result{
			systemID:    sys.ID(),
			systemName:  sys.Name(),
			score:       int(math.Round(float64(len(matched)) / float64(total) * 100)),
			matchedTags: matched,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].score > out[j].score })
	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}

// matchTags returns lowercased tags present in set, each at most once.
func matchTags(tags []string, set map[string]struct{}) []string {
	var matched []string
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		lt := strings.ToLower(tag)
		if _, ok := set[lt]; !ok {
			continue
		}
		if _, dup := seen[lt]; dup {
			continue
		}
		seen[lt] = struct{}{}
		matched = append(matched, lt)
	}
	return matched
}
