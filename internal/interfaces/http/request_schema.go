package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

// errMalformedBody el cuerpo no es JSON.
var errMalformedBody = errors.New("cuerpo de la petición inválido")

// bodySchema valida cuerpos JSON contra un esquema reflejado de un DTO.
// Los campos sin omitempty son obligatorios; se admiten propiedades adicionales.
type bodySchema struct {
	schema *gojsonschema.Schema
}

func mustBodySchema(v any) *bodySchema {
	r := jsonschema.Reflector{
		Anonymous:                 true,
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	s := r.Reflect(v)
	s.Version = "http://json-schema.org/draft-07/schema#"

	raw, err := json.Marshal(s)
	if err != nil {
		panic("http: serializar esquema: " + err.Error())
	}
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic("http: compilar esquema: " + err.Error())
	}
	return &bodySchema{schema: compiled}
}

// Validate devuelve errMalformedBody si body no es JSON y un *multierror.Error con
// todas las violaciones si no cumple el esquema.
func (b *bodySchema) Validate(body []byte) error {
	if len(body) == 0 || !json.Valid(body) {
		return errMalformedBody
	}
	result, err := b.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	if result.Valid() {
		return nil
	}

	var merr *multierror.Error
	for _, desc := range result.Errors() {
		merr = multierror.Append(merr, errors.New(desc.String()))
	}
	merr.ErrorFormat = func(errs []error) string {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return strings.Join(msgs, "; ")
	}
	return merr
}
