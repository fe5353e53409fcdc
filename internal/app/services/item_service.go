package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tunde/campusfound/internal/app/models"
	"github.com/tunde/campusfound/internal/app/models/dto"
	"github.com/tunde/campusfound/internal/app/repositories"
	"github.com/tunde/campusfound/internal/pkg/apperrors"
	"github.com/tunde/campusfound/internal/pkg/filestorage"
	"github.com/tunde/campusfound/internal/pkg/helpers"
)

// DefaultFoundLocation is recorded when a finder does not say where the item
// turned up. The confirmation path requires an explicit location instead.
const DefaultFoundLocation = "Not specified"

const itemImageSubPath = "items"

// ItemService handles item reporting and the claim/found workflow
type ItemService struct {
	itemRepo *repositories.ItemRepository
	storage  *filestorage.LocalStorage
	logger   zerolog.Logger
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo *repositories.ItemRepository, storage *filestorage.LocalStorage, logger zerolog.Logger) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		storage:  storage,
		logger:   logger,
	}
}

// ReportItem validates and stores a new lost or found report. The image is
// optional; a failed later insert removes the already saved file.
func (s *ItemService) ReportItem(ctx context.Context, userID int64, req *dto.ReportItemRequest, image *multipart.FileHeader) (*models.Item, error) {
	category := models.ItemCategory(strings.ToLower(strings.TrimSpace(req.Category)))
	if !models.IsValidCategory(category) {
		return nil, apperrors.NewValidationError("category", "unknown category")
	}

	status := models.ItemStatus(req.Status)
	if status != models.StatusLost && status != models.StatusFound {
		return nil, apperrors.NewValidationError("status", "status must be lost or found")
	}

	dateOccurred, err := time.Parse(time.RFC3339, req.DateOccurred)
	if err != nil {
		return nil, apperrors.NewValidationError("dateOccurred", "must be an RFC 3339 timestamp")
	}
	if dateOccurred.After(time.Now()) {
		return nil, apperrors.NewValidationError("dateOccurred", "cannot be in the future")
	}

	locationLost := strings.TrimSpace(req.LocationLost)
	locationFound := strings.TrimSpace(req.LocationFound)
	switch status {
	case models.StatusLost:
		if locationLost == "" {
			return nil, apperrors.ErrLocationRequired
		}
	case models.StatusFound:
		if locationFound == "" {
			return nil, apperrors.ErrLocationRequired
		}
	}

	var imageURL *string
	if image != nil {
		path, err := s.storage.SaveFile(image, itemImageSubPath)
		if err != nil {
			return nil, fmt.Errorf("error saving item image: %w", err)
		}
		imageURL = &path
	}

	item := &models.Item{
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		Category:      category,
		Status:        status,
		LocationLost:  locationLost,
		LocationFound: locationFound,
		DateOccurred:  dateOccurred,
		ImageURL:      imageURL,
		ReportedBy:    userID,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		if imageURL != nil {
			if delErr := s.storage.DeleteFile(*imageURL); delErr != nil {
				s.logger.Warn().Err(delErr).Str("path", *imageURL).Msg("Failed to remove orphaned image")
			}
		}
		return nil, err
	}

	return item, nil
}

// GetItem retrieves a single item with reporter and claimer names
func (s *ItemService) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

// ListItems returns a filtered page for the lost or found listing. The page is
// clamped, so the returned pagination block reflects the page actually served.
func (s *ItemService) ListItems(ctx context.Context, filter repositories.ItemFilter, page int) (*dto.ItemListResponse, error) {
	if filter.Now.IsZero() {
		filter.Now = time.Now()
	}

	items, total, servedPage, err := s.itemRepo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	return &dto.ItemListResponse{
		Items:      dto.FromItems(items),
		Categories: dto.CategoryNames(),
		Pagination: helpers.NewPaginationInfo(total, servedPage, helpers.PageSize),
	}, nil
}

// ClaimItem claims a found item for userID. The precondition checks run inside
// a single conditional update, so exactly one of several concurrent claimants
// wins and the rest receive a precise error.
func (s *ItemService) ClaimItem(ctx context.Context, itemID, userID int64) (*models.Item, error) {
	if err := s.itemRepo.Claim(ctx, itemID, userID); err != nil {
		return nil, err
	}
	return s.itemRepo.GetByID(ctx, itemID)
}

// GetClaimable returns the item if userID could claim it right now; used by
// the confirmation page before the claim is submitted.
func (s *ItemService) GetClaimable(ctx context.Context, itemID, userID int64) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := item.CheckClaimableBy(userID); err != nil {
		return nil, err
	}
	return item, nil
}

// MarkFound flips a lost item to found on behalf of userID. An empty location
// falls back to DefaultFoundLocation.
func (s *ItemService) MarkFound(ctx context.Context, itemID, userID int64, location string) (*models.Item, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		location = DefaultFoundLocation
	}

	if err := s.itemRepo.MarkFound(ctx, itemID, userID, location); err != nil {
		return nil, err
	}
	return s.itemRepo.GetByID(ctx, itemID)
}

// MarkFoundConfirmed is the confirmation-path variant of MarkFound; it rejects
// an empty location instead of defaulting it.
func (s *ItemService) MarkFoundConfirmed(ctx context.Context, itemID, userID int64, location string) (*models.Item, error) {
	if strings.TrimSpace(location) == "" {
		return nil, apperrors.ErrLocationRequired
	}
	return s.MarkFound(ctx, itemID, userID, location)
}

// GetMarkableFound returns the item if userID could mark it found right now;
// used by the found-confirmation page.
func (s *ItemService) GetMarkableFound(ctx context.Context, itemID, userID int64) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := item.CheckMarkableFoundBy(userID); err != nil {
		return nil, err
	}
	return item, nil
}

// VerifyItem records an admin attestation on an item
func (s *ItemService) VerifyItem(ctx context.Context, itemID, adminID int64) (*models.Item, error) {
	if err := s.itemRepo.Verify(ctx, itemID, adminID); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("itemID", itemID).Int64("adminID", adminID).Msg("Item verification recorded")
	return s.itemRepo.GetByID(ctx, itemID)
}

// ReturnItem closes out a found item as returned to its owner. Terminal; the
// claim overlay is preserved as the hand-over record.
func (s *ItemService) ReturnItem(ctx context.Context, itemID int64) (*models.Item, error) {
	if err := s.itemRepo.MarkReturned(ctx, itemID); err != nil {
		return nil, err
	}
	return s.itemRepo.GetByID(ctx, itemID)
}
