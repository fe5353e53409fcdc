package repositories

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/tunde/campusfound/internal/app/models"
)

// Date range filter values accepted by the listing endpoints.
const (
	DateRangeToday = "today"
	DateRangeWeek  = "week"
)

// Claim filter values accepted by the found listing.
const (
	ClaimFilterClaimed   = "claimed"
	ClaimFilterUnclaimed = "unclaimed"
)

// ItemFilter describes a listing query. Zero-value fields mean "no filter" and
// all set fields combine conjunctively. Now anchors the relative date ranges so
// queries are reproducible in tests.
type ItemFilter struct {
	Status    models.ItemStatus
	Search    string
	Category  string
	DateRange string
	Claim     string
	Now       time.Time
}

// locationColumn returns the location column the search should cover. Lost
// listings search where the item was lost, found listings where it was found.
func (f ItemFilter) locationColumn() string {
	if f.Status == models.StatusLost {
		return "i.location_lost"
	}
	return "i.location_found"
}

// Conditions converts the filter into squirrel predicates. Kept free of any
// database handle so the generated SQL can be asserted directly.
func (f ItemFilter) Conditions() []squirrel.Sqlizer {
	var conditions []squirrel.Sqlizer

	if f.Status != "" {
		conditions = append(conditions, squirrel.Eq{"i.status": string(f.Status)})
	}

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		conditions = append(conditions, squirrel.Or{
			squirrel.ILike{"i.title": pattern},
			squirrel.ILike{"i.description": pattern},
			squirrel.ILike{f.locationColumn(): pattern},
			squirrel.ILike{"i.category": pattern},
		})
	}

	if f.Category != "" {
		conditions = append(conditions, squirrel.Eq{"i.category": f.Category})
	}

	switch f.DateRange {
	case DateRangeToday:
		conditions = append(conditions, squirrel.GtOrEq{"i.date_occurred": f.Now.Add(-24 * time.Hour)})
	case DateRangeWeek:
		conditions = append(conditions, squirrel.GtOrEq{"i.date_occurred": f.Now.Add(-7 * 24 * time.Hour)})
	}

	switch f.Claim {
	case ClaimFilterClaimed:
		conditions = append(conditions, squirrel.NotEq{"i.claimed_by": nil})
	case ClaimFilterUnclaimed:
		conditions = append(conditions, squirrel.Eq{"i.claimed_by": nil})
	}

	return conditions
}
