// Package api holds the OpenAPI document of the POS HTTP API.
//
// The document is embedded in the binary, validated at startup and served
// both as JSON and through Swagger UI.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=oapi-codegen.yml openapi.yml

//go:embed openapi.yml
var document []byte

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("parse openapi document: %w", err)
	}

	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	return doc, nil
}

type swaggerDoc struct {
	doc *openapi3.T
}

func (s swaggerDoc) ReadDoc() string {
	raw, err := s.doc.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(raw)
}

var registerOnce sync.Once

// RegisterSwagger makes doc the document served by Swagger UI. Only the
// first call has an effect.
func RegisterSwagger(doc *openapi3.T) {
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{doc: doc})
	})
}
