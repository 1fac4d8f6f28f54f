package servers

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var rawSpec []byte

// RawSpec returns the OpenAPI document. The swagger UI serves the same
// bytes at /swagger/doc.json.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger returns the parsed and validated OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	if err = swagger.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("error validating OpenAPI document: %w", err)
	}
	return swagger, nil
}

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	return string(rawSpec)
}

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}
