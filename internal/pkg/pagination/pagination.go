// Package pagination carries page requests from the HTTP layer down to repositories
// and page results back up, together with the X-Total-Count and Link headers that
// describe a page to clients.
package pagination

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"crown/internal/pkg/errs"
	"crown/internal/pkg/guard"
)

const (
	DefaultPage     = 0
	DefaultPageSize = 20
	DefaultMaxSize  = 2000
)

var ErrPageRequestIsNotConstructed = errors.New("PageRequest must be created via NewPageRequest")

// Direction is the sort direction of a single Order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Order sorts by one property.
type Order struct {
	Property  string
	Direction Direction
}

// PageRequest is a validated request for one page of results.
type PageRequest struct {
	page int
	size int
	sort []Order

	guard guard.ConstructorGuard
}

// NewPageRequest validates page >= 0 and 1 <= size <= maxSize, and that the
// end of the page still fits in an int.
func NewPageRequest(page, size, maxSize int, sort []Order) (PageRequest, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if err := errors.Join(
		validatePage(page),
		validateSize(size, maxSize),
	); err != nil {
		return PageRequest{}, err
	}
	if err := validateOffset(page, size); err != nil {
		return PageRequest{}, err
	}

	return PageRequest{
		page:  page,
		size:  size,
		sort:  append([]Order(nil), sort...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (r PageRequest) Validate() error {
	return r.guard.Validate(ErrPageRequestIsNotConstructed)
}

func (r PageRequest) Page() int { return r.page }

func (r PageRequest) Size() int { return r.size }

// Offset is the number of items that precede this page.
func (r PageRequest) Offset() int { return r.page * r.size }

func (r PageRequest) Sort() []Order {
	return append([]Order(nil), r.sort...)
}

func validatePage(page int) error {
	if page < 0 {
		return errs.NewValueIsOutOfRangeError("page", page, 0, "unbounded")
	}
	return nil
}

func validateOffset(page, size int) error {
	if maxPage := (math.MaxInt - size) / size; page > maxPage {
		return errs.NewValueIsOutOfRangeError("page", page, 0, maxPage)
	}
	return nil
}

func validateSize(size, maxSize int) error {
	if size < 1 || size > maxSize {
		return errs.NewValueIsOutOfRangeError("size", size, 1, maxSize)
	}
	return nil
}

// ParseSort parses repeated sort parameters of the form "prop[,prop...][,asc|desc]".
// A trailing direction applies to every property in the same value; blank values are skipped.
func ParseSort(values []string) ([]Order, error) {
	orders := make([]Order, 0, len(values))
	for _, value := range values {
		parts := strings.Split(value, ",")
		direction := Asc
		if last := strings.ToLower(strings.TrimSpace(parts[len(parts)-1])); last == string(Asc) || last == string(Desc) {
			direction = Direction(last)
			parts = parts[:len(parts)-1]
		}

		for _, part := range parts {
			property := strings.TrimSpace(part)
			if property == "" {
				continue
			}
			if strings.ContainsAny(property, " \t;") {
				return nil, errs.NewValueIsInvalidErrorWithCause("sort", fmt.Errorf("malformed property %q", property))
			}
			orders = append(orders, Order{Property: property, Direction: direction})
		}
	}
	return orders, nil
}

// Page is one slice of a larger, ordered result set.
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
}

// NewPage builds the page answering req.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = make([]T, 0)
	}
	return Page[T]{
		Content:       content,
		Number:        req.Page(),
		Size:          req.Size(),
		TotalElements: total,
	}
}

// TotalPages is ceil(TotalElements / Size), or 1 when Size is zero.
func (p Page[T]) TotalPages() int {
	if p.Size == 0 {
		return 1
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// Map converts the content of a page while keeping its position.
func Map[T, U any](p Page[T], f func(T) U) Page[U] {
	content := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, f(item))
	}
	return Page[U]{
		Content:       content,
		Number:        p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
	}
}
