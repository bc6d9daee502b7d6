package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// swaggerDoc serves the OpenAPI document to echo-swagger through the swag registry.
type swaggerDoc struct {
	doc string
}

func (s swaggerDoc) ReadDoc() string {
	return s.doc
}

var registerSwaggerOnce sync.Once

// registerSwagger publishes doc under swag.Name. The registry is process-wide and
// panics on a second registration, so only the first document is kept.
func registerSwagger(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal OpenAPI document: %w", err)
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{doc: string(raw)})
	})
	return nil
}
