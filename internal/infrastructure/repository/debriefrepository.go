package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/n8dizzle/debrief-tools/internal/domain/debrief"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/persistence/mappers"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/persistence/models"
	"github.com/n8dizzle/debrief-tools/internal/shared/db"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
)

type DebriefRepository struct {
	db     *gorm.DB
	mapper mappers.DebriefMapper
}

func NewDebriefRepository(db *gorm.DB) *DebriefRepository {
	return &DebriefRepository{
		db:     db,
		mapper: mappers.NewDebriefMapper(),
	}
}

func (r *DebriefRepository) Save(ctx context.Context, d *debrief.Debrief) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(fmt.Sprintf("debrief for ticket %d already exists", d.TicketID()))
		}
		return fmt.Errorf("failed to save debrief: %w", err)
	}

	return d.SetID(model.ID)
}

func (r *DebriefRepository) Update(ctx context.Context, d *debrief.Debrief) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") so zero values like a cleared follow-up flag or an
	// overwritten fail status persist.
	result := tx.
		Model(&models.DebriefModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update debrief: %w", result.Error)
	}

	return nil
}

func (r *DebriefRepository) GetByID(ctx context.Context, id uint) (*debrief.Debrief, error) {
	var model models.DebriefModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("debrief not found")
		}
		return nil, fmt.Errorf("failed to find debrief: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DebriefRepository) GetByTicketID(ctx context.Context, ticketID uint) (*debrief.Debrief, error) {
	var model models.DebriefModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("debrief not found")
		}
		return nil, fmt.Errorf("failed to find debrief: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DebriefRepository) ExistsForTicket(ctx context.Context, ticketID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.DebriefModel{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check debrief existence: %w", err)
	}

	return count > 0, nil
}

func (r *DebriefRepository) ListCompletedBetween(ctx context.Context, start, end time.Time) ([]*debrief.Debrief, error) {
	var modelList []models.DebriefModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("completed_at >= ? AND completed_at < ?", start.UnixMilli(), end.UnixMilli()).
		Order("completed_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list debriefs: %w", err)
	}

	debriefs := make([]*debrief.Debrief, 0, len(modelList))
	for i := range modelList {
		d, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		debriefs = append(debriefs, d)
	}

	return debriefs, nil
}
