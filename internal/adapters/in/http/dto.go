package http

import (
	"crown/internal/core/domain/model/delivery"
	"crown/internal/generated/servers"
)

func toAttributes(body servers.Delivery) (delivery.Attributes, error) {
	status, err := delivery.ParseStatus(string(body.Status))
	if err != nil {
		return delivery.Attributes{}, err
	}

	attrs := delivery.Attributes{
		OrderNumber: body.OrderNumber,
		Recipient:   body.Recipient,
		Address:     body.Address,
		Status:      status,
		ScheduledAt: body.ScheduledAt,
		DeliveredAt: body.DeliveredAt,
	}
	if body.Courier != nil {
		attrs.Courier = *body.Courier
	}
	return attrs, nil
}

func fromDomain(d *delivery.Delivery) servers.Delivery {
	id := d.ID()
	response := servers.Delivery{
		Id:          &id,
		OrderNumber: d.OrderNumber(),
		Recipient:   d.Recipient(),
		Address:     d.Address(),
		Status:      servers.DeliveryStatus(d.Status()),
		ScheduledAt: d.ScheduledAt(),
		DeliveredAt: d.DeliveredAt(),
	}
	if courier := d.Courier(); courier != "" {
		response.Courier = &courier
	}
	return response
}
