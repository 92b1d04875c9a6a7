package servers

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// BasePath is where the API is mounted, as declared in the document's servers.
const BasePath = "/api/v1"

//go:embed api.yaml
var rawSpec []byte

// GetSwagger parses the embedded OpenAPI document. Each call returns a fresh
// copy that the caller may modify.
func GetSwagger() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	return doc, nil
}

// swaggerDoc serves the document to swag readers such as echo-swagger.
type swaggerDoc struct {
	json func() (string, error)
}

func (d *swaggerDoc) ReadDoc() string {
	doc, err := d.json()
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return doc
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{json: sync.OnceValues(func() (string, error) {
		doc, err := GetSwagger()
		if err != nil {
			return "", err
		}
		b, err := doc.MarshalJSON()
		if err != nil {
			return "", fmt.Errorf("encode openapi document: %w", err)
		}
		return string(b), nil
	})})
}
