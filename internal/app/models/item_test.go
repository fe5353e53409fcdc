package models

import (
	"errors"
	"testing"
	"time"

	"github.com/tunde/campusfound/internal/pkg/apperrors"
)

func foundItem(reportedBy int64) *Item {
	return &Item{
		ID:           1,
		Title:        "Blue Backpack",
		Category:     CategoryOthers,
		Status:       StatusFound,
		ReportedBy:   reportedBy,
		DateReported: time.Now(),
	}
}

func TestCheckClaimableBy(t *testing.T) {
	item := foundItem(1)

	if err := item.CheckClaimableBy(2); err != nil {
		t.Errorf("expected claim allowed for non-reporter, got %v", err)
	}

	if err := item.CheckClaimableBy(1); !errors.Is(err, apperrors.ErrSelfClaim) {
		t.Errorf("expected ErrSelfClaim for reporter, got %v", err)
	}

	claimer := int64(3)
	item.ClaimedBy = &claimer
	if err := item.CheckClaimableBy(2); !errors.Is(err, apperrors.ErrItemAlreadyClaimed) {
		t.Errorf("expected ErrItemAlreadyClaimed, got %v", err)
	}

	lost := foundItem(1)
	lost.Status = StatusLost
	if err := lost.CheckClaimableBy(2); !errors.Is(err, apperrors.ErrItemNotClaimable) {
		t.Errorf("expected ErrItemNotClaimable for lost item, got %v", err)
	}
}

func TestCheckMarkableFoundBy(t *testing.T) {
	item := foundItem(1)
	item.Status = StatusLost

	if err := item.CheckMarkableFoundBy(2); err != nil {
		t.Errorf("expected mark-found allowed for non-reporter, got %v", err)
	}

	if err := item.CheckMarkableFoundBy(1); !errors.Is(err, apperrors.ErrSelfMarkFound) {
		t.Errorf("expected ErrSelfMarkFound for reporter, got %v", err)
	}

	item.Status = StatusFound
	if err := item.CheckMarkableFoundBy(2); !errors.Is(err, apperrors.ErrItemNotLost) {
		t.Errorf("expected ErrItemNotLost for found item, got %v", err)
	}
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !IsValidCategory(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}
	if IsValidCategory("furniture") {
		t.Error("expected 'furniture' to be invalid")
	}
	if IsValidCategory("") {
		t.Error("expected empty category to be invalid")
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []ItemStatus{StatusLost, StatusFound, StatusReturned} {
		if !IsValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if IsValidStatus("stolen") {
		t.Error("expected 'stolen' to be invalid")
	}
}

func TestIsClaimed(t *testing.T) {
	item := foundItem(1)
	if item.IsClaimed() {
		t.Error("expected unclaimed item")
	}
	claimer := int64(2)
	item.ClaimedBy = &claimer
	if !item.IsClaimed() {
		t.Error("expected claimed item")
	}
}
