package service

import (
	"sort"
	"time"

	"github.com/shiprate/shiprate-server/internal/model"
)

// legacyDateLayouts are tried in order against the legacy "date" field when
// a rating has no canonical createdAt timestamp.
var legacyDateLayouts = []string{time.RFC3339, "2006-01-02"}

// effectiveTime resolves a rating's date: createdAt wins, then a parseable
// legacy date string, then the Unix epoch so malformed records sort last
// instead of aborting the aggregation.
func effectiveTime(r *model.Rating) time.Time {
	if !r.CreatedAt.IsZero() {
		return r.CreatedAt
	}
	for _, layout := range legacyDateLayouts {
		if t, err := time.Parse(layout, r.Date); err == nil {
			return t
		}
	}
	return time.Unix(0, 0).UTC()
}

// ownedRating is a requester-owned rating annotated with its parent ship's
// display name.
type ownedRating struct {
	rating   *model.Rating
	shipName string
}

// topRecent sorts owned ratings by effective date descending and keeps at
// most n. The sort is stable: equal (or equally unparseable) dates keep
// their input order, which upstream makes deterministic by flattening
// per-ship results in ship order.
func topRecent(owned []ownedRating, n int) []model.RecentRating {
	entries := make([]model.RecentRating, len(owned))
	for i, o := range owned {
		entries[i] = model.RecentRating{
			ShipName: o.shipName,
			RatedAt:  effectiveTime(o.rating),
			Average:  averageScore(o.rating.Scores),
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].RatedAt.After(entries[j].RatedAt)
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
