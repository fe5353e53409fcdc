package models

import (
	"time"

	"github.com/tunde/campusfound/internal/pkg/apperrors"
)

// ItemStatus is the lost/found/returned axis of an item. Transitions are
// forward-only: lost -> found -> returned. "returned" is terminal and reachable
// only through the admin surface.
type ItemStatus string

const (
	StatusLost     ItemStatus = "lost"
	StatusFound    ItemStatus = "found"
	StatusReturned ItemStatus = "returned"
)

// IsValidStatus reports whether status is one of the declared item statuses.
func IsValidStatus(status ItemStatus) bool {
	switch status {
	case StatusLost, StatusFound, StatusReturned:
		return true
	}
	return false
}

// ItemCategory classifies reported items.
type ItemCategory string

const (
	CategoryElectronics ItemCategory = "electronics"
	CategoryDocuments   ItemCategory = "documents"
	CategoryClothing    ItemCategory = "clothing"
	CategoryAccessories ItemCategory = "accessories"
	CategoryBooks       ItemCategory = "books"
	CategoryOthers      ItemCategory = "others"
)

// Categories is the canonical category list, used for validation and filter UIs.
var Categories = []ItemCategory{
	CategoryElectronics,
	CategoryDocuments,
	CategoryClothing,
	CategoryAccessories,
	CategoryBooks,
	CategoryOthers,
}

// IsValidCategory reports whether category is one of the declared categories.
func IsValidCategory(category ItemCategory) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Item defines the item model based on the 'items' table. Status and the claim
// overlay (ClaimedBy + DateClaimed) are independent axes: a claimed item keeps
// status=found. Verification (IsVerified + VerifiedBy) is an admin attestation
// orthogonal to both.
type Item struct {
	ID            int64        `json:"id" db:"id"`
	Title         string       `json:"title" db:"title"`
	Description   string       `json:"description" db:"description"`
	Category      ItemCategory `json:"category" db:"category"`
	Status        ItemStatus   `json:"status" db:"status"`
	LocationLost  string       `json:"locationLost,omitempty" db:"location_lost"`
	LocationFound string       `json:"locationFound,omitempty" db:"location_found"`
	DateReported  time.Time    `json:"dateReported" db:"date_reported"` // set once, at creation
	DateOccurred  time.Time    `json:"dateOccurred" db:"date_occurred"` // user-supplied
	ImageURL      *string      `json:"imageUrl,omitempty" db:"image_url"`
	ReportedBy    int64        `json:"reportedBy" db:"reported_by"`
	ClaimedBy     *int64       `json:"claimedBy,omitempty" db:"claimed_by"`
	DateClaimed   *time.Time   `json:"dateClaimed,omitempty" db:"date_claimed"`
	IsVerified    bool         `json:"isVerified" db:"is_verified"`
	VerifiedBy    *int64       `json:"verifiedBy,omitempty" db:"verified_by"`

	// Relations (populated when needed)
	Reporter *User `json:"reporter,omitempty"`
	Claimer  *User `json:"claimer,omitempty"`
}

// IsClaimed reports whether the claim overlay is set.
func (i *Item) IsClaimed() bool {
	return i.ClaimedBy != nil
}

// CheckClaimableBy verifies the full claim precondition set for userID: the item
// must be found, unclaimed, and not reported by the claimant. Returns nil when
// the claim is allowed.
func (i *Item) CheckClaimableBy(userID int64) error {
	if i.Status != StatusFound {
		return apperrors.ErrItemNotClaimable
	}
	if i.ClaimedBy != nil {
		return apperrors.ErrItemAlreadyClaimed
	}
	if i.ReportedBy == userID {
		return apperrors.ErrSelfClaim
	}
	return nil
}

// CheckMarkableFoundBy verifies the mark-as-found precondition set for userID:
// the item must be lost and not reported by the caller.
func (i *Item) CheckMarkableFoundBy(userID int64) error {
	if i.Status != StatusLost {
		return apperrors.ErrItemNotLost
	}
	if i.ReportedBy == userID {
		return apperrors.ErrSelfMarkFound
	}
	return nil
}
