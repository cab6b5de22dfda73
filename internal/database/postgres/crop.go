package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farmverse/farmverse/internal/domain"
)

// cropPositionConstraint is the unique constraint guarding one crop per plot.
const cropPositionConstraint = "crops_owner_id_position_x_position_y_key"

const cropColumns = `crop_id, owner_id, crop_type, position_x, position_y,
	planted_at, harvest_time, stage, is_harvestable, created_at, updated_at`

// CropRepository implements the crop repository for PostgreSQL
type CropRepository struct {
	db *pgxpool.Pool
}

// NewCropRepository creates a new crop repository
func NewCropRepository(db *pgxpool.Pool) *CropRepository {
	return &CropRepository{db: db}
}

func scanCrop(row pgx.Row) (*domain.Crop, error) {
	var c domain.Crop
	var stage string
	err := row.Scan(&c.ID, &c.OwnerID, &c.CropType, &c.Position.X, &c.Position.Y,
		&c.PlantedAt, &c.HarvestTime, &stage, &c.IsHarvestable, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Stage = domain.GrowthStage(stage)
	return &c, nil
}

// GetCrop retrieves a single crop by ID
func (r *CropRepository) GetCrop(ctx context.Context, cropID string) (*domain.Crop, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+cropColumns+` FROM crops WHERE crop_id = $1`, cropID)
	crop, err := scanCrop(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCropNotFound
		}
		return nil, fmt.Errorf("failed to get crop: %w", err)
	}
	return crop, nil
}

// ListCropsByOwner retrieves all crops belonging to an owner
func (r *CropRepository) ListCropsByOwner(ctx context.Context, ownerID string) ([]domain.Crop, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+cropColumns+` FROM crops WHERE owner_id = $1 ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list crops: %w", err)
	}
	defer rows.Close()
	return collectCrops(rows)
}

// ListGrowingCrops retrieves every crop that has not reached the ready stage
func (r *CropRepository) ListGrowingCrops(ctx context.Context) ([]domain.Crop, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+cropColumns+` FROM crops WHERE is_harvestable = FALSE`)
	if err != nil {
		return nil, fmt.Errorf("failed to list growing crops: %w", err)
	}
	defer rows.Close()
	return collectCrops(rows)
}

func collectCrops(rows pgx.Rows) ([]domain.Crop, error) {
	crops := []domain.Crop{}
	for rows.Next() {
		crop, err := scanCrop(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crop: %w", err)
		}
		crops = append(crops, *crop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read crops: %w", err)
	}
	return crops, nil
}

// PlantCrop debits the owner's wallet and inserts the crop in one transaction
func (r *CropRepository) PlantCrop(ctx context.Context, crop *domain.Crop, cost int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	tag, err := tx.Exec(ctx,
		`UPDATE users SET coins = coins - $2, updated_at = NOW()
		 WHERE user_id = $1 AND coins >= $2`, crop.OwnerID, cost)
	if err != nil {
		return fmt.Errorf("failed to debit wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1)`, crop.OwnerID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check user: %w", err)
		}
		if !exists {
			return domain.ErrUserNotFound
		}
		return domain.ErrInsufficientFunds
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO crops (crop_id, owner_id, crop_type, position_x, position_y,
			planted_at, harvest_time, stage, is_harvestable)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		crop.ID, crop.OwnerID, crop.CropType, crop.Position.X, crop.Position.Y,
		crop.PlantedAt, crop.HarvestTime, string(crop.Stage), crop.IsHarvestable)
	if err != nil {
		if isUniqueViolation(err, cropPositionConstraint) {
			return domain.ErrPositionOccupied
		}
		return fmt.Errorf("failed to insert crop: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit plant: %w", err)
	}
	return nil
}

// HarvestCrop deletes a ready crop and credits the harvester in one transaction
func (r *CropRepository) HarvestCrop(ctx context.Context, ownerID, cropID string, payout, experience int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	row := tx.QueryRow(ctx,
		`SELECT `+cropColumns+` FROM crops WHERE crop_id = $1 FOR UPDATE`, cropID)
	crop, err := scanCrop(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCropNotFound
		}
		return fmt.Errorf("failed to lock crop: %w", err)
	}
	if crop.OwnerID != ownerID {
		return domain.ErrUnauthorized
	}

	// Readiness is judged by harvest_time, not the persisted is_harvestable
	// flag: the flag only advances when a reconcile pass runs, so a ripe crop
	// can sit unflagged for up to one reconcile interval. The conditional
	// delete keeps the check inside the row lock.
	tag, err := tx.Exec(ctx,
		`DELETE FROM crops WHERE crop_id = $1 AND harvest_time <= NOW()`, cropID)
	if err != nil {
		return fmt.Errorf("failed to delete crop: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCropNotReady
	}

	tag, err = tx.Exec(ctx,
		`UPDATE users SET coins = coins + $2, experience = experience + $3, updated_at = NOW()
		 WHERE user_id = $1`, ownerID, payout, experience)
	if err != nil {
		return fmt.Errorf("failed to credit wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit harvest: %w", err)
	}
	return nil
}

// ApplyGrowthPass persists a batch of stage updates and their notifications
// in one transaction
func (r *CropRepository) ApplyGrowthPass(ctx context.Context, updates []domain.GrowthUpdate, notifications []domain.Notification) error {
	if len(updates) == 0 && len(notifications) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(
			`UPDATE crops SET stage = $2, is_harvestable = $3, updated_at = NOW()
			 WHERE crop_id = $1`, u.CropID, string(u.Stage), u.IsHarvestable)
	}
	for _, n := range notifications {
		batch.Queue(
			`INSERT INTO notifications (notification_id, owner_id, title, message, kind, crop_id, created_at)
			 VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7)`,
			n.ID, n.OwnerID, n.Title, n.Message, string(n.Kind), n.CropID, n.CreatedAt)
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to apply growth batch: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close growth batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit growth pass: %w", err)
	}
	return nil
}
