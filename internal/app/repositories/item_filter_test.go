package repositories

import (
	"strings"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/tunde/campusfound/internal/app/models"
)

func buildSQL(t *testing.T, filter ItemFilter) (string, []interface{}) {
	t.Helper()

	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("i.id").From("items i")
	for _, cond := range filter.Conditions() {
		builder = builder.Where(cond)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		t.Fatalf("ToSql() error = %v", err)
	}
	return sql, args
}

func TestItemFilterConditions(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("empty filter yields no predicates", func(t *testing.T) {
		sql, args := buildSQL(t, ItemFilter{})
		if strings.Contains(sql, "WHERE") {
			t.Errorf("expected no WHERE clause, got %q", sql)
		}
		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("search expands to ILIKE disjunction", func(t *testing.T) {
		sql, args := buildSQL(t, ItemFilter{Status: models.StatusFound, Search: "wallet"})
		for _, col := range []string{"i.title", "i.description", "i.location_found", "i.category"} {
			if !strings.Contains(sql, col+" ILIKE") {
				t.Errorf("expected ILIKE on %s, got %q", col, sql)
			}
		}
		want := "%wallet%"
		found := false
		for _, a := range args {
			if a == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected arg %q in %v", want, args)
		}
	})

	t.Run("lost listing searches the lost location", func(t *testing.T) {
		sql, _ := buildSQL(t, ItemFilter{Status: models.StatusLost, Search: "library"})
		if !strings.Contains(sql, "i.location_lost ILIKE") {
			t.Errorf("expected ILIKE on i.location_lost, got %q", sql)
		}
		if strings.Contains(sql, "i.location_found ILIKE") {
			t.Errorf("did not expect ILIKE on i.location_found, got %q", sql)
		}
	})

	t.Run("today cutoff is 24 hours before now", func(t *testing.T) {
		_, args := buildSQL(t, ItemFilter{DateRange: DateRangeToday, Now: now})
		want := now.Add(-24 * time.Hour)
		if len(args) != 1 || args[0] != want {
			t.Errorf("expected cutoff %v, got %v", want, args)
		}
	})

	t.Run("week cutoff is 7 days before now", func(t *testing.T) {
		_, args := buildSQL(t, ItemFilter{DateRange: DateRangeWeek, Now: now})
		want := now.Add(-7 * 24 * time.Hour)
		if len(args) != 1 || args[0] != want {
			t.Errorf("expected cutoff %v, got %v", want, args)
		}
	})

	t.Run("unknown date range is ignored", func(t *testing.T) {
		sql, _ := buildSQL(t, ItemFilter{DateRange: "fortnight"})
		if strings.Contains(sql, "date_occurred") {
			t.Errorf("expected no date predicate, got %q", sql)
		}
	})

	t.Run("unclaimed filter checks claimed_by is null", func(t *testing.T) {
		sql, _ := buildSQL(t, ItemFilter{Claim: ClaimFilterUnclaimed})
		if !strings.Contains(sql, "i.claimed_by IS NULL") {
			t.Errorf("expected claimed_by IS NULL, got %q", sql)
		}
	})

	t.Run("claimed filter checks claimed_by is not null", func(t *testing.T) {
		sql, _ := buildSQL(t, ItemFilter{Claim: ClaimFilterClaimed})
		if !strings.Contains(sql, "i.claimed_by IS NOT NULL") {
			t.Errorf("expected claimed_by IS NOT NULL, got %q", sql)
		}
	})

	t.Run("all filters combine conjunctively", func(t *testing.T) {
		sql, _ := buildSQL(t, ItemFilter{
			Status:    models.StatusFound,
			Search:    "phone",
			Category:  "electronics",
			DateRange: DateRangeWeek,
			Claim:     ClaimFilterUnclaimed,
			Now:       now,
		})
		for _, fragment := range []string{"i.status =", "ILIKE", "i.category =", "i.date_occurred >=", "i.claimed_by IS NULL"} {
			if !strings.Contains(sql, fragment) {
				t.Errorf("expected fragment %q in %q", fragment, sql)
			}
		}
		if strings.Count(sql, " AND ") < 4 {
			t.Errorf("expected conjunctive combination, got %q", sql)
		}
	})
}
