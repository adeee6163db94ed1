package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/n8dizzle/debrief-tools/internal/domain/dispatcher"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/persistence/mappers"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/persistence/models"
	"github.com/n8dizzle/debrief-tools/internal/shared/db"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
)

type DispatcherRepository struct {
	db     *gorm.DB
	mapper mappers.DispatcherMapper
}

func NewDispatcherRepository(db *gorm.DB) *DispatcherRepository {
	return &DispatcherRepository{
		db:     db,
		mapper: mappers.NewDispatcherMapper(),
	}
}

func (r *DispatcherRepository) Save(ctx context.Context, d *dispatcher.Dispatcher) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(fmt.Sprintf("dispatcher with email %s already exists", d.Email()))
		}
		return fmt.Errorf("failed to save dispatcher: %w", err)
	}

	return d.SetID(model.ID)
}

func (r *DispatcherRepository) GetByID(ctx context.Context, id uint) (*dispatcher.Dispatcher, error) {
	var model models.DispatcherModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("dispatcher not found")
		}
		return nil, fmt.Errorf("failed to find dispatcher: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DispatcherRepository) GetByEmail(ctx context.Context, email string) (*dispatcher.Dispatcher, error) {
	var model models.DispatcherModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("email = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("dispatcher not found")
		}
		return nil, fmt.Errorf("failed to find dispatcher: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DispatcherRepository) ListActive(ctx context.Context) ([]*dispatcher.Dispatcher, error) {
	var modelList []models.DispatcherModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list dispatchers: %w", err)
	}

	dispatchers := make([]*dispatcher.Dispatcher, 0, len(modelList))
	for i := range modelList {
		d, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		dispatchers = append(dispatchers, d)
	}

	return dispatchers, nil
}
