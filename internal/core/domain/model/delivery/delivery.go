package delivery

import (
	"errors"
	"strings"
	"time"

	"crown/internal/pkg/errs"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Sortable properties, as named on the wire.
const (
	PropertyID          = "id"
	PropertyOrderNumber = "orderNumber"
	PropertyRecipient   = "recipient"
	PropertyAddress     = "address"
	PropertyStatus      = "status"
	PropertyCourier     = "courier"
	PropertyScheduledAt = "scheduledAt"
	PropertyDeliveredAt = "deliveredAt"
)

// SortableProperties lists the properties a page of deliveries may be ordered by.
func SortableProperties() []string {
	return []string{
		PropertyID, PropertyOrderNumber, PropertyRecipient, PropertyAddress,
		PropertyStatus, PropertyCourier, PropertyScheduledAt, PropertyDeliveredAt,
	}
}

// Attributes are the client-supplied fields of a delivery.
type Attributes struct {
	OrderNumber string
	Recipient   string
	Address     string
	Status      Status
	Courier     string
	ScheduledAt *time.Time
	DeliveredAt *time.Time
}

// Delivery is the aggregate root of the delivery resource.
//
// Example:
//
//	d, err := delivery.NewDelivery(delivery.Attributes{
//	    OrderNumber: "ORD-1001",
//	    Recipient:   "Jane Doe",
//	    Address:     "1 Main St",
//	    Status:      delivery.Pending,
//	})
//	if err != nil {
//	    return err
//	}
//	saved, err := repo.Save(ctx, d) // saved.ID() is now set
type Delivery struct {
	id    string
	attrs Attributes

	isConstructed bool
}

// NewDelivery creates a delivery that has not been persisted yet.
func NewDelivery(attrs Attributes) (*Delivery, error) {
	d := &Delivery{isConstructed: true}
	if err := d.setAttributes(attrs); err != nil {
		return nil, err
	}
	return d, nil
}

// RestoreDelivery rebuilds a delivery with a known identifier.
func RestoreDelivery(id string, attrs Attributes) (*Delivery, error) {
	d := &Delivery{isConstructed: true}
	if err := errors.Join(
		d.setID(id),
		d.setAttributes(attrs),
	); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// WithID returns a copy of d carrying id. d is left unchanged.
func (d *Delivery) WithID(id string) (*Delivery, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return RestoreDelivery(id, d.attrs)
}

// ID is empty for deliveries that have not been persisted.
func (d *Delivery) ID() string {
	return d.id
}

func (d *Delivery) HasID() bool {
	return d.id != ""
}

func (d *Delivery) Attributes() Attributes {
	attrs := d.attrs
	attrs.ScheduledAt = copyTime(d.attrs.ScheduledAt)
	attrs.DeliveredAt = copyTime(d.attrs.DeliveredAt)
	return attrs
}

func (d *Delivery) OrderNumber() string { return d.attrs.OrderNumber }
func (d *Delivery) Recipient() string { return d.attrs.Recipient }
func (d *Delivery) Address() string { return d.attrs.Address }
func (d *Delivery) Status() Status { return d.attrs.Status }
func (d *Delivery) Courier() string { return d.attrs.Courier }
func (d *Delivery) ScheduledAt() *time.Time { return copyTime(d.attrs.ScheduledAt) }
func (d *Delivery) DeliveredAt() *time.Time { return copyTime(d.attrs.DeliveredAt) }

// setID keeps the identifier as given and rejects an all-blank one.
func (d *Delivery) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("id")
	}
	d.id = id
	return nil
}

func (d *Delivery) setAttributes(attrs Attributes) error {
	var problems []error
	if strings.TrimSpace(attrs.OrderNumber) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("orderNumber"))
	}
	if strings.TrimSpace(attrs.Recipient) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("recipient"))
	}
	if strings.TrimSpace(attrs.Address) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("address"))
	}
	if attrs.Status == "" {
		problems = append(problems, errs.NewValueIsRequiredError("status"))
	} else if err := attrs.Status.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	d.attrs = attrs
	d.attrs.ScheduledAt = copyTime(attrs.ScheduledAt)
	d.attrs.DeliveredAt = copyTime(attrs.DeliveredAt)
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
