package webhook

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/pb33f/libopenapi"
	validatorErrors "github.com/pb33f/libopenapi-validator/errors"
	"github.com/pb33f/libopenapi-validator/schema_validation"
	"github.com/pb33f/libopenapi/datamodel/high/base"
)

//go:embed schemas.yaml
var schemasYAML []byte

// UnknownEventError reports a payload whose code has no registered schema.
// Unlike the Map*State functions, validation treats unknown codes as a hard
// failure.
type UnknownEventError struct {
	Code string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown webhook event code %q", e.Code)
}

// ValidationError reports a payload that failed its event code's schema.
type ValidationError struct {
	Code   string
	Errors []*validatorErrors.ValidationError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("webhook payload for %q invalid: %s", e.Code, e.Errors[0].Message)
	}
	return fmt.Sprintf("webhook payload for %q invalid", e.Code)
}

// Validator validates webhook payloads against the per-event-code schemas
// bundled with the SDK. Each known code has its own strict schema; there is
// no permissive fallback.
type Validator struct {
	schemas   map[string]*base.Schema
	validator schema_validation.SchemaValidator
}

// NewValidator compiles the bundled schema document.
func NewValidator() (*Validator, error) {
	doc, err := libopenapi.NewDocument(schemasYAML)
	if err != nil {
		return nil, fmt.Errorf("parsing webhook schema document: %w", err)
	}
	model, err := doc.BuildV3Model()
	if err != nil {
		return nil, fmt.Errorf("building webhook schema model: %w", err)
	}
	if model.Model.Components == nil || model.Model.Components.Schemas == nil {
		return nil, fmt.Errorf("webhook schema document has no component schemas")
	}

	v := &Validator{
		schemas:   make(map[string]*base.Schema),
		validator: schema_validation.NewSchemaValidator(),
	}
	known := make(map[string]bool)
	for _, code := range KnownCodes() {
		known[code] = true
	}
	for pair := model.Model.Components.Schemas.Oldest(); pair != nil; pair = pair.Next() {
		if known[pair.Key] {
			v.schemas[pair.Key] = pair.Value.Schema()
		}
	}
	for _, code := range KnownCodes() {
		if v.schemas[code] == nil {
			return nil, fmt.Errorf("webhook schema document missing schema for %q", code)
		}
	}
	return v, nil
}

// Validate checks a raw webhook payload against the schema for its event
// code and returns the decoded envelope. Unknown codes fail with
// *UnknownEventError, schema violations with *ValidationError.
func (v *Validator) Validate(payload []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("decoding webhook payload: %w", err)
	}

	schema, ok := v.schemas[event.Code]
	if !ok {
		return nil, &UnknownEventError{Code: event.Code}
	}

	valid, errs := v.validator.ValidateSchemaBytes(schema, payload)
	if !valid {
		return nil, &ValidationError{Code: event.Code, Errors: errs}
	}
	return &event, nil
}
