package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/n8dizzle/debrief-tools/internal/domain/spotcheck"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/persistence/mappers"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/persistence/models"
	"github.com/n8dizzle/debrief-tools/internal/shared/db"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
)

type SpotCheckRepository struct {
	db     *gorm.DB
	mapper mappers.SpotCheckMapper
}

func NewSpotCheckRepository(db *gorm.DB) *SpotCheckRepository {
	return &SpotCheckRepository{
		db:     db,
		mapper: mappers.NewSpotCheckMapper(),
	}
}

func (r *SpotCheckRepository) Save(ctx context.Context, sc *spotcheck.SpotCheck) error {
	model := r.mapper.ToModel(sc)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save spot check: %w", err)
	}

	return sc.SetID(model.ID)
}

func (r *SpotCheckRepository) Update(ctx context.Context, sc *spotcheck.SpotCheck) error {
	model := r.mapper.ToModel(sc)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") so nil correctness fields persist when a review is revised.
	result := tx.
		Model(&models.SpotCheckModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update spot check: %w", result.Error)
	}

	return nil
}

func (r *SpotCheckRepository) GetByID(ctx context.Context, id uint) (*spotcheck.SpotCheck, error) {
	var model models.SpotCheckModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("spot check not found")
		}
		return nil, fmt.Errorf("failed to find spot check: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SpotCheckRepository) GetByDebriefID(ctx context.Context, debriefID uint) (*spotcheck.SpotCheck, error) {
	var model models.SpotCheckModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("debrief_id = ?", debriefID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("spot check not found")
		}
		return nil, fmt.Errorf("failed to find spot check: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SpotCheckRepository) ExistsForDebrief(ctx context.Context, debriefID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.SpotCheckModel{}).
		Where("debrief_id = ?", debriefID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check spot check existence: %w", err)
	}

	return count > 0, nil
}

func (r *SpotCheckRepository) ListDebriefIDsWithChecks(ctx context.Context, debriefIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool)
	if len(debriefIDs) == 0 {
		return result, nil
	}

	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.SpotCheckModel{}).
		Where("debrief_id IN ?", debriefIDs).
		Pluck("debrief_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list checked debrief ids: %w", err)
	}

	for _, id := range ids {
		result[id] = true
	}

	return result, nil
}

func (r *SpotCheckRepository) ListCompletedByDispatcher(ctx context.Context, dispatcherID uint) ([]*spotcheck.SpotCheck, error) {
	var modelList []models.SpotCheckModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Joins("JOIN debriefs ON debriefs.id = spot_checks.debrief_id").
		Where("debriefs.dispatcher_id = ? AND spot_checks.status = ?", dispatcherID, "completed").
		Order("spot_checks.completed_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list completed spot checks: %w", err)
	}

	checks := make([]*spotcheck.SpotCheck, 0, len(modelList))
	for i := range modelList {
		sc, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		checks = append(checks, sc)
	}

	return checks, nil
}

func (r *SpotCheckRepository) ListPending(ctx context.Context) ([]*spotcheck.SpotCheck, error) {
	var modelList []models.SpotCheckModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("status = ?", "pending").
		Order("selected_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending spot checks: %w", err)
	}

	checks := make([]*spotcheck.SpotCheck, 0, len(modelList))
	for i := range modelList {
		sc, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		checks = append(checks, sc)
	}

	return checks, nil
}
