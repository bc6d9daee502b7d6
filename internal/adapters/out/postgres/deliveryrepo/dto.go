// Package deliveryrepo persists the delivery aggregate with GORM and maps it
// to and from its relational representation.
package deliveryrepo

import (
	"time"

	"crown/internal/core/domain/model/delivery"
)

// DeliveryDTO is the row layout of the deliveries table.
type DeliveryDTO struct {
	ID          string     `gorm:"type:varchar(64);primaryKey"`
	OrderNumber string     `gorm:"type:varchar(64);not null;index"`
	Recipient   string     `gorm:"not null"`
	Address     string     `gorm:"not null"`
	Status      string     `gorm:"type:varchar(16);not null;index;check:chk_deliveries_status,status IN ('PENDING','DISPATCHED','IN_TRANSIT','DELIVERED','RETURNED')"`
	Courier     string     `gorm:"not null;default:''"`
	ScheduledAt *time.Time `gorm:"type:timestamptz"`
	DeliveredAt *time.Time `gorm:"type:timestamptz"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// columns maps wire property names to column names.
var columns = map[string]string{
	delivery.PropertyID:          "id",
	delivery.PropertyOrderNumber: "order_number",
	delivery.PropertyRecipient:   "recipient",
	delivery.PropertyAddress:     "address",
	delivery.PropertyStatus:      "status",
	delivery.PropertyCourier:     "courier",
	delivery.PropertyScheduledAt: "scheduled_at",
	delivery.PropertyDeliveredAt: "delivered_at",
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:          d.ID(),
		OrderNumber: d.OrderNumber(),
		Recipient:   d.Recipient(),
		Address:     d.Address(),
		Status:      d.Status().String(),
		Courier:     d.Courier(),
		ScheduledAt: utc(d.ScheduledAt()),
		DeliveredAt: utc(d.DeliveredAt()),
	}
}

// toDomain rebuilds the aggregate through RestoreDelivery, so rows that break
// domain rules surface as errors instead of half-valid aggregates.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	return delivery.RestoreDelivery(dto.ID, delivery.Attributes{
		OrderNumber: dto.OrderNumber,
		Recipient:   dto.Recipient,
		Address:     dto.Address,
		Status:      delivery.Status(dto.Status),
		Courier:     dto.Courier,
		ScheduledAt: utc(dto.ScheduledAt),
		DeliveredAt: utc(dto.DeliveredAt),
	})
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
