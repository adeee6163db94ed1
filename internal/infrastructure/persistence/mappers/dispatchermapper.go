package mappers

import (
	"fmt"
	"time"

	"github.com/n8dizzle/debrief-tools/internal/domain/dispatcher"
	vo "github.com/n8dizzle/debrief-tools/internal/domain/dispatcher/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/persistence/models"
)

// DispatcherMapper handles the conversion between Dispatcher domain entities and persistence models.
type DispatcherMapper interface {
	ToModel(d *dispatcher.Dispatcher) *models.DispatcherModel
	ToDomain(model *models.DispatcherModel) (*dispatcher.Dispatcher, error)
}

type DispatcherMapperImpl struct{}

func NewDispatcherMapper() DispatcherMapper {
	return &DispatcherMapperImpl{}
}

func (m *DispatcherMapperImpl) ToModel(d *dispatcher.Dispatcher) *models.DispatcherModel {
	return &models.DispatcherModel{
		ID:        d.ID(),
		Name:      d.Name(),
		Email:     d.Email(),
		Role:      d.Role().String(),
		IsPrimary: d.IsPrimary(),
		IsActive:  d.IsActive(),
		CreatedAt: d.CreatedAt().UnixMilli(),
	}
}

func (m *DispatcherMapperImpl) ToDomain(model *models.DispatcherModel) (*dispatcher.Dispatcher, error) {
	role, err := vo.NewRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("invalid role in model: %w", err)
	}

	return dispatcher.ReconstructDispatcher(
		model.ID,
		model.Name,
		model.Email,
		role,
		model.IsPrimary,
		model.IsActive,
		time.UnixMilli(model.CreatedAt),
	)
}
