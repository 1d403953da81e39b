package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/blackwell-systems/guidectl/internal/guideerr"
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Bind decodes the JSON object raw into dst and checks dst's validate tags.
// Required fields should be pointers so that absence is distinguishable from
// a zero value. Any failure is a MalformedDocument error.
func (c *Codec) Bind(raw json.RawMessage, dst any) error {
	return c.bind(raw, dst, "")
}

func (c *Codec) bind(raw json.RawMessage, dst any, what string) error {
	if !present(raw) {
		return malformed(what, "expected an object, got nothing")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return malformed(what, describeJSONError(err))
	}
	if err := c.validate.Struct(dst); err != nil {
		return validationError(err, what)
	}
	return nil
}

func validationError(err error, what string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return malformed(what, err.Error())
	}

	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, strconv.Quote(fe.Field()))
			continue
		}
		invalid = append(invalid, fmt.Sprintf("field %q %s", fe.Field(), friendlyMessage(fe)))
	}

	var parts []string
	switch len(missing) {
	case 0:
	case 1:
		parts = append(parts, "missing required field "+missing[0])
	default:
		parts = append(parts, "missing required fields "+strings.Join(missing, ", "))
	}
	parts = append(parts, invalid...)

	gerr := malformed(what, strings.Join(parts, "; "))
	gerr.Subject = verrs[0].Field()
	return gerr
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func describeJSONError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field != "" {
			return fmt.Sprintf("field %q: expected %s, got JSON %s", typeErr.Field, typeErr.Type, typeErr.Value)
		}
		return fmt.Sprintf("expected a JSON object, got JSON %s", typeErr.Value)
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset)
	}
	return err.Error()
}

func malformed(what, msg string) *guideerr.Error {
	if what != "" {
		return guideerr.Malformed("malformed %s: %s", what, msg)
	}
	return guideerr.Malformed("%s", msg)
}

// present reports whether raw holds a value other than JSON null.
func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// marshal encodes v without HTML escaping and without a trailing newline.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Marshal encodes v the way the codec writes documents: compact, without
// HTML escaping. Variant codecs use it for nested fields.
func Marshal(v any) ([]byte, error) {
	return marshal(v)
}
