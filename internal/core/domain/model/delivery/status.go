package delivery

import (
	"fmt"
	"strings"

	"crown/internal/pkg/errs"
)

// Status is the reported state of a delivery.
type Status string

const (
	Pending    Status = "PENDING"
	Dispatched Status = "DISPATCHED"
	InTransit  Status = "IN_TRANSIT"
	Delivered  Status = "DELIVERED"
	Returned   Status = "RETURNED"
)

// Statuses lists every valid status in declaration order.
func Statuses() []Status {
	return []Status{Pending, Dispatched, InTransit, Delivered, Returned}
}

// ParseStatus accepts a status name in any letter case.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	for _, valid := range Statuses() {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
}

func (s Status) String() string {
	return string(s)
}
