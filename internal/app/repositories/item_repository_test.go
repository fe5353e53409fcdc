package repositories

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/tunde/campusfound/internal/app/models"
	"github.com/tunde/campusfound/internal/pkg/apperrors"
)

func TestPendingClaimConditionsSQL(t *testing.T) {
	sql, args, err := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("COUNT(*)").
		From("items").
		Where(pendingClaimConditions(7)).
		ToSql()
	if err != nil {
		t.Fatalf("ToSql() error = %v", err)
	}

	// Pending claims are the reporter's own found items that are still unclaimed
	for _, want := range []string{"reported_by = $1", "status = $2", "claimed_by IS NULL"} {
		if !strings.Contains(sql, want) {
			t.Errorf("pending claims SQL %q missing %q", sql, want)
		}
	}
	if len(args) != 2 || args[0] != int64(7) || args[1] != string(models.StatusFound) {
		t.Errorf("pending claims args = %v, want [7 found]", args)
	}
}

func TestClaimFailureClassification(t *testing.T) {
	claimer := int64(2)
	other := int64(3)
	now := time.Now()

	tests := []struct {
		name string
		item *models.Item
		want error
	}{
		{
			name: "already claimed",
			item: &models.Item{Status: models.StatusFound, ReportedBy: other, ClaimedBy: &other, DateClaimed: &now},
			want: apperrors.ErrItemAlreadyClaimed,
		},
		{
			name: "own report",
			item: &models.Item{Status: models.StatusFound, ReportedBy: claimer},
			want: apperrors.ErrSelfClaim,
		},
		{
			name: "still lost",
			item: &models.Item{Status: models.StatusLost, ReportedBy: other},
			want: apperrors.ErrItemNotClaimable,
		},
		{
			// The update matched nothing but the re-read looks claimable: the
			// claim was not written, so the caller must still get a conflict.
			name: "lost race",
			item: &models.Item{Status: models.StatusFound, ReportedBy: other},
			want: apperrors.ErrItemNotClaimable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := claimFailure(tt.item, claimer)
			if err == nil {
				t.Fatal("claimFailure() = nil, want an error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("claimFailure() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMarkFoundFailureClassification(t *testing.T) {
	finder := int64(2)
	other := int64(3)

	tests := []struct {
		name string
		item *models.Item
		want error
	}{
		{
			name: "already found",
			item: &models.Item{Status: models.StatusFound, ReportedBy: other},
			want: apperrors.ErrItemNotLost,
		},
		{
			name: "own report",
			item: &models.Item{Status: models.StatusLost, ReportedBy: finder},
			want: apperrors.ErrSelfMarkFound,
		},
		{
			name: "lost race",
			item: &models.Item{Status: models.StatusLost, ReportedBy: other},
			want: apperrors.ErrItemNotLost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := markFoundFailure(tt.item, finder)
			if err == nil {
				t.Fatal("markFoundFailure() = nil, want an error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("markFoundFailure() = %v, want %v", err, tt.want)
			}
		})
	}
}
