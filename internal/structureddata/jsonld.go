package structureddata

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-sitecontent/internal/validation"
)

// Context is the JSON-LD @context shared by every payload.
const Context = "https://schema.org"

// ErrUnknownType is returned by Validate when no schema is registered for the
// payload's @type.
var ErrUnknownType = errors.New("structureddata: unknown @type")

// Typed is implemented by every builder in this package.
type Typed interface {
	Type() string
}

// Script encodes each value as JSON and wraps it in its own
// <script type="application/ld+json"> element. The JSON encoder escapes <, >
// and &, so the output is safe to embed in HTML.
func Script(values ...any) (string, error) {
	var b strings.Builder
	for i, value := range values {
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("structureddata: encode value %d: %w", i, err)
		}
		b.WriteString(`<script type="application/ld+json">`)
		b.Write(encoded)
		b.WriteString("</script>\n")
	}
	return b.String(), nil
}

// Validate checks a payload against the schema registered for its @type.
// Values may be builders from this package or any JSON-marshalable value
// carrying an "@type" key.
func Validate(value any) error {
	payload, err := validation.ToPayload(value)
	if err != nil {
		return fmt.Errorf("structureddata: %w", err)
	}
	doc, ok := payload.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: payload is not an object", ErrUnknownType)
	}
	typ, _ := doc["@type"].(string)
	validator, ok := schemaFor(typ)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}
	return validator.Validate(doc)
}

// ValidateAll validates every value and joins the failures.
func ValidateAll(values ...any) error {
	var errs []error
	for _, value := range values {
		if err := Validate(value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
