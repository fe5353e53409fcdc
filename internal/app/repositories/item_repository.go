package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tunde/campusfound/internal/app/models"
	"github.com/tunde/campusfound/internal/pkg/apperrors"
	"github.com/tunde/campusfound/internal/pkg/helpers"
	"github.com/tunde/campusfound/internal/pkg/logger"
)

var itemColumns = []string{
	"i.id", "i.title", "i.description", "i.category", "i.status",
	"i.location_lost", "i.location_found", "i.date_reported", "i.date_occurred",
	"i.image_url", "i.reported_by", "i.claimed_by", "i.date_claimed",
	"i.is_verified", "i.verified_by",
	"r.first_name", "r.last_name",
	"c.first_name", "c.last_name",
}

const itemJoins = "items i JOIN users r ON i.reported_by = r.id LEFT JOIN users c ON i.claimed_by = c.id"

// ItemRepository handles item database operations
type ItemRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanItem(row pgx.Row) (*models.Item, error) {
	var item models.Item
	var reporterFirst, reporterLast string
	var claimerFirst, claimerLast *string

	err := row.Scan(
		&item.ID, &item.Title, &item.Description, &item.Category, &item.Status,
		&item.LocationLost, &item.LocationFound, &item.DateReported, &item.DateOccurred,
		&item.ImageURL, &item.ReportedBy, &item.ClaimedBy, &item.DateClaimed,
		&item.IsVerified, &item.VerifiedBy,
		&reporterFirst, &reporterLast,
		&claimerFirst, &claimerLast,
	)
	if err != nil {
		return nil, err
	}

	item.Reporter = &models.User{ID: item.ReportedBy, FirstName: reporterFirst, LastName: reporterLast}
	if item.ClaimedBy != nil && claimerFirst != nil && claimerLast != nil {
		item.Claimer = &models.User{ID: *item.ClaimedBy, FirstName: *claimerFirst, LastName: *claimerLast}
	}
	return &item, nil
}

func (r *ItemRepository) scanItems(rows pgx.Rows) ([]*models.Item, error) {
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}
	return items, nil
}

// Create inserts a new item report
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (title, description, category, status, location_lost, location_found,
			date_occurred, image_url, reported_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, date_reported
	`
	err := r.db.QueryRow(ctx, query,
		item.Title, item.Description, item.Category, item.Status,
		item.LocationLost, item.LocationFound, item.DateOccurred,
		item.ImageURL, item.ReportedBy,
	).Scan(&item.ID, &item.DateReported)
	if err != nil {
		logger.Error().Err(err).Str("title", item.Title).Msg("Error inserting item")
		return fmt.Errorf("error creating item: %w", err)
	}

	logger.Info().Int64("itemID", item.ID).Str("status", string(item.Status)).Msg("Item reported")
	return nil
}

// GetByID retrieves an item with its reporter and claimer names
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	sql, args, err := r.sb.Select(itemColumns...).
		From(itemJoins).
		Where(squirrel.Eq{"i.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build item query: %w", err)
	}

	item, err := scanItem(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("error retrieving item: %w", err)
	}
	return item, nil
}

// List returns a filtered page of items ordered newest-report-first, plus the
// unpaginated filtered count. A page beyond the last valid page is clamped to
// the last page rather than returned empty.
func (r *ItemRepository) List(ctx context.Context, filter ItemFilter, page int) ([]*models.Item, int64, int, error) {
	conditions := filter.Conditions()

	countBuilder := r.sb.Select("COUNT(*)").From(itemJoins)
	for _, cond := range conditions {
		countBuilder = countBuilder.Where(cond)
	}
	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, 0, fmt.Errorf("error counting items: %w", err)
	}

	page = helpers.ClampPage(page, total, helpers.PageSize)
	if total == 0 {
		return []*models.Item{}, 0, page, nil
	}

	selectBuilder := r.sb.Select(itemColumns...).From(itemJoins)
	for _, cond := range conditions {
		selectBuilder = selectBuilder.Where(cond)
	}
	sql, args, err := selectBuilder.
		OrderBy("i.date_reported DESC").
		Limit(uint64(helpers.PageSize)).
		Offset(helpers.OffsetFor(page, helpers.PageSize)).
		ToSql()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("error querying items: %w", err)
	}

	items, err := r.scanItems(rows)
	if err != nil {
		return nil, 0, 0, err
	}
	return items, total, page, nil
}

// Claim atomically claims a found item for userID. The preconditions are
// enforced inside the UPDATE itself so two concurrent claimants cannot both
// win; the loser gets zero rows affected and the caller re-reads the item to
// classify the failure.
func (r *ItemRepository) Claim(ctx context.Context, itemID, userID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE items
		SET claimed_by = $1, date_claimed = NOW()
		WHERE id = $2
		  AND status = 'found'
		  AND claimed_by IS NULL
		  AND reported_by <> $1`,
		userID, itemID)
	if err != nil {
		return fmt.Errorf("error claiming item: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		item, err := r.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		return claimFailure(item, userID)
	}

	logger.Info().Int64("itemID", itemID).Int64("userID", userID).Msg("Item claimed")
	return nil
}

// claimFailure explains a zero-row conditional claim update. A re-read that
// still passes the preconditions means the update lost a race; the caller gets
// a conflict, never a false success.
func claimFailure(item *models.Item, userID int64) error {
	if err := item.CheckClaimableBy(userID); err != nil {
		return err
	}
	return apperrors.ErrItemNotClaimable
}

// MarkFound atomically flips a lost item to found, recording where it was
// found. Same conditional-update shape as Claim so concurrent finders resolve
// to exactly one winner.
func (r *ItemRepository) MarkFound(ctx context.Context, itemID, userID int64, locationFound string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE items
		SET status = 'found', location_found = $1
		WHERE id = $2
		  AND status = 'lost'
		  AND reported_by <> $3`,
		locationFound, itemID, userID)
	if err != nil {
		return fmt.Errorf("error marking item found: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		item, err := r.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		return markFoundFailure(item, userID)
	}

	logger.Info().Int64("itemID", itemID).Int64("userID", userID).Msg("Item marked as found")
	return nil
}

// markFoundFailure mirrors claimFailure for the lost to found transition.
func markFoundFailure(item *models.Item, userID int64) error {
	if err := item.CheckMarkableFoundBy(userID); err != nil {
		return err
	}
	return apperrors.ErrItemNotLost
}

// MarkReturned transitions a found item to the terminal returned status.
// Admin-only; the claim overlay is left intact as the return record.
func (r *ItemRepository) MarkReturned(ctx context.Context, itemID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE items SET status = 'returned' WHERE id = $1 AND status = 'found'`,
		itemID)
	if err != nil {
		return fmt.Errorf("error marking item returned: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, itemID); err != nil {
			return err
		}
		return apperrors.ErrItemNotClaimable
	}

	logger.Info().Int64("itemID", itemID).Msg("Item marked as returned")
	return nil
}

// Verify records an admin attestation on an item
func (r *ItemRepository) Verify(ctx context.Context, itemID, adminID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE items SET is_verified = TRUE, verified_by = $1 WHERE id = $2`,
		adminID, itemID)
	if err != nil {
		return fmt.Errorf("error verifying item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrItemNotFound
	}

	logger.Info().Int64("itemID", itemID).Int64("adminID", adminID).Msg("Item verified")
	return nil
}

// ListByReporter returns every item reported by userID, newest first
func (r *ItemRepository) ListByReporter(ctx context.Context, userID int64) ([]*models.Item, error) {
	sql, args, err := r.sb.Select(itemColumns...).
		From(itemJoins).
		Where(squirrel.Eq{"i.reported_by": userID}).
		OrderBy("i.date_reported DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build reporter query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying items by reporter: %w", err)
	}
	return r.scanItems(rows)
}

// RecentByReporter returns the reporter's most recent items, capped at limit
func (r *ItemRepository) RecentByReporter(ctx context.Context, userID int64, limit int) ([]*models.Item, error) {
	sql, args, err := r.sb.Select(itemColumns...).
		From(itemJoins).
		Where(squirrel.Eq{"i.reported_by": userID}).
		OrderBy("i.date_reported DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent reporter query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying recent items by reporter: %w", err)
	}
	return r.scanItems(rows)
}

// RecentFoundExcluding returns the most recent unclaimed found items not
// reported by userID, for the dashboard's "recently found" strip.
func (r *ItemRepository) RecentFoundExcluding(ctx context.Context, userID int64, limit int) ([]*models.Item, error) {
	sql, args, err := r.sb.Select(itemColumns...).
		From(itemJoins).
		Where(squirrel.Eq{"i.status": string(models.StatusFound)}).
		Where(squirrel.Eq{"i.claimed_by": nil}).
		Where(squirrel.NotEq{"i.reported_by": userID}).
		OrderBy("i.date_reported DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent found query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying recently found items: %w", err)
	}
	return r.scanItems(rows)
}

// RandomSample returns up to limit random items for the landing page
func (r *ItemRepository) RandomSample(ctx context.Context, limit int) ([]*models.Item, error) {
	sql, args, err := r.sb.Select(itemColumns...).
		From(itemJoins).
		OrderBy("RANDOM()").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sample query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying item sample: %w", err)
	}
	return r.scanItems(rows)
}

// ListUnverified returns unverified items for the admin dashboard, oldest
// report first so the backlog drains in order.
func (r *ItemRepository) ListUnverified(ctx context.Context, limit int) ([]*models.Item, error) {
	sql, args, err := r.sb.Select(itemColumns...).
		From(itemJoins).
		Where(squirrel.Eq{"i.is_verified": false}).
		OrderBy("i.date_reported ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build unverified query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying unverified items: %w", err)
	}
	return r.scanItems(rows)
}

// StatusCounts returns the global count of items per status
func (r *ItemRepository) StatusCounts(ctx context.Context) (map[models.ItemStatus]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM items GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting items by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ItemStatus]int64)
	for rows.Next() {
		var status models.ItemStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error scanning status count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status counts: %w", err)
	}
	return counts, nil
}

// StatusCountsForReporter returns the per-status counts of one user's reports
func (r *ItemRepository) StatusCountsForReporter(ctx context.Context, userID int64) (map[models.ItemStatus]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*) FROM items WHERE reported_by = $1 GROUP BY status`, userID)
	if err != nil {
		return nil, fmt.Errorf("error counting user items by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ItemStatus]int64)
	for rows.Next() {
		var status models.ItemStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error scanning status count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status counts: %w", err)
	}
	return counts, nil
}

// pendingClaimConditions scopes the pending-claims count: the user's own found
// reports that nobody has claimed yet.
func pendingClaimConditions(userID int64) squirrel.And {
	return squirrel.And{
		squirrel.Eq{"reported_by": userID},
		squirrel.Eq{"status": string(models.StatusFound)},
		squirrel.Eq{"claimed_by": nil},
	}
}

// CountPendingClaimsFor returns how many of the user's found reports are still
// awaiting a claim.
func (r *ItemRepository) CountPendingClaimsFor(ctx context.Context, userID int64) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("items").
		Where(pendingClaimConditions(userID)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build pending claims query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting pending claims: %w", err)
	}
	return count, nil
}
