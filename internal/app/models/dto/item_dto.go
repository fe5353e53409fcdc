package dto

import (
	"time"

	"github.com/tunde/campusfound/internal/app/models"
)

// ReportItemRequest represents the item report form. Bound from multipart form
// data; the image file is handled separately by the controller.
type ReportItemRequest struct {
	Title         string `form:"title" binding:"required,max=200"`
	Description   string `form:"description" binding:"required"`
	Category      string `form:"category" binding:"required"`
	Status        string `form:"status" binding:"required,oneof=lost found"`
	LocationLost  string `form:"locationLost" binding:"omitempty,max=200"`
	LocationFound string `form:"locationFound" binding:"omitempty,max=200"`
	DateOccurred  string `form:"dateOccurred" binding:"required"` // RFC 3339
}

// MarkFoundRequest carries the found-location for a lost -> found transition.
// Location is optional on the direct path and defaults to "Not specified"; the
// confirmation path requires it.
type MarkFoundRequest struct {
	LocationFound string `json:"locationFound" binding:"omitempty,max=200"`
}

// FoundConfirmRequest is the confirmation-path variant of MarkFoundRequest;
// an empty location is rejected.
type FoundConfirmRequest struct {
	LocationFound string `json:"locationFound" binding:"required,max=200"`
}

// ItemResponse represents a single item
type ItemResponse struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Status        string     `json:"status"`
	LocationLost  string     `json:"locationLost,omitempty"`
	LocationFound string     `json:"locationFound,omitempty"`
	DateReported  time.Time  `json:"dateReported"`
	DateOccurred  time.Time  `json:"dateOccurred"`
	ImageURL      *string    `json:"imageUrl,omitempty"`
	ReportedBy    int64      `json:"reportedBy"`
	ReporterName  string     `json:"reporterName,omitempty"`
	ClaimedBy     *int64     `json:"claimedBy,omitempty"`
	ClaimerName   string     `json:"claimerName,omitempty"`
	DateClaimed   *time.Time `json:"dateClaimed,omitempty"`
	IsVerified    bool       `json:"isVerified"`
}

// FromItem converts a models.Item to an ItemResponse
func FromItem(item *models.Item) ItemResponse {
	if item == nil {
		return ItemResponse{}
	}

	resp := ItemResponse{
		ID:            item.ID,
		Title:         item.Title,
		Description:   item.Description,
		Category:      string(item.Category),
		Status:        string(item.Status),
		LocationLost:  item.LocationLost,
		LocationFound: item.LocationFound,
		DateReported:  item.DateReported,
		DateOccurred:  item.DateOccurred,
		ImageURL:      item.ImageURL,
		ReportedBy:    item.ReportedBy,
		ClaimedBy:     item.ClaimedBy,
		DateClaimed:   item.DateClaimed,
		IsVerified:    item.IsVerified,
	}
	if item.Reporter != nil {
		resp.ReporterName = item.Reporter.FullName()
	}
	if item.Claimer != nil {
		resp.ClaimerName = item.Claimer.FullName()
	}
	return resp
}

// FromItems converts a slice of items
func FromItems(items []*models.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, FromItem(item))
	}
	return responses
}

// ItemListResponse represents a filtered, paginated item listing. TotalItems in
// the pagination block is the filtered-but-unpaginated count.
type ItemListResponse struct {
	Items      []ItemResponse `json:"items"`
	Categories []string       `json:"categories"`
	Pagination PaginationInfo `json:"pagination"`
}

// CategoryNames returns the canonical category list as strings for filter UIs.
func CategoryNames() []string {
	names := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		names = append(names, string(c))
	}
	return names
}
