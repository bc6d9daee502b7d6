package deliveryrepo

import (
	"context"
	"errors"

	"crown/internal/core/domain/model/delivery"
	"crown/internal/core/domain/model/kernel"
	"crown/internal/pkg/errs"
	"crown/internal/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save inserts the delivery, or replaces every column of the row with the same id.
// A delivery without an id gets a fresh UUID.
func (r *GormDeliveryRepository) Save(ctx context.Context, aggregate *delivery.Delivery) (*delivery.Delivery, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	stored := aggregate
	if !aggregate.HasID() {
		var err error
		if stored, err = aggregate.WithID(kernel.NewUUID().String()); err != nil {
			return nil, err
		}
	}

	dto := fromDomain(stored)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
	if err != nil {
		return nil, translateError(err)
	}

	r.tracker.TrackAggregate(stored.ID(), stored)
	return stored, nil
}

func (r *GormDeliveryRepository) FindAll(
	ctx context.Context,
	req pagination.PageRequest,
) (pagination.Page[*delivery.Delivery], error) {
	if err := req.Validate(); err != nil {
		return pagination.Page[*delivery.Delivery]{}, err
	}

	orderBy, err := orderByColumns(req.Sort())
	if err != nil {
		return pagination.Page[*delivery.Delivery]{}, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Count(&total).Error; err != nil {
		return pagination.Page[*delivery.Delivery]{}, err
	}

	var dtos []DeliveryDTO
	err = r.db.WithContext(ctx).
		Clauses(clause.OrderBy{Columns: orderBy}).
		Offset(req.Offset()).
		Limit(req.Size()).
		Find(&dtos).Error
	if err != nil {
		return pagination.Page[*delivery.Delivery]{}, err
	}

	content := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return pagination.Page[*delivery.Delivery]{}, err
		}
		content = append(content, d)
	}

	return pagination.NewPage(content, req, total), nil
}

func (r *GormDeliveryRepository) FindByID(ctx context.Context, id string) (*delivery.Delivery, bool, error) {
	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	d, err := toDomain(dto)
	if err != nil {
		return nil, false, err
	}
	return d, true, nil
}

// DeleteByID removes the row if present. A missing id is not an error.
func (r *GormDeliveryRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "id = ?", id).Error
}

// orderByColumns resolves the requested orders and appends id as the final tie-breaker.
func orderByColumns(orders []pagination.Order) ([]clause.OrderByColumn, error) {
	result := make([]clause.OrderByColumn, 0, len(orders)+1)
	for _, order := range orders {
		column, ok := columns[order.Property]
		if !ok {
			return nil, errs.NewValueIsInvalidError("sort: " + order.Property)
		}
		result = append(result, clause.OrderByColumn{
			Column: clause.Column{Name: column},
			Desc:   order.Direction == pagination.Desc,
		})
	}
	result = append(result, clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	return result, nil
}
