package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"vitrine-backend/internal/validation"
)

var ErrMultipleObjects = errors.New("body must contain a single JSON object")

// DecodeJSON decodes a single JSON object and rejects unknown fields.
func DecodeJSON(body io.Reader, v interface{}) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return decodeOne(dec, v)
}

// DecodeJSONLenient decodes a single JSON object and silently drops fields the
// target does not declare. Public forms use it so that extra keys sent by a
// client (a forged "status" for example) never reach storage.
func DecodeJSONLenient(body io.Reader, v interface{}) error {
	return decodeOne(json.NewDecoder(body), v)
}

func decodeOne(dec *json.Decoder, v interface{}) error {
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return ErrMultipleObjects
	}
	return nil
}

// TypeError converts a JSON type mismatch into a validation error naming the
// field, so a wrong primitive type is reported like any other schema violation.
func TypeError(err error) (*validation.Error, bool) {
	var ute *json.UnmarshalTypeError
	if !errors.As(err, &ute) {
		return nil, false
	}
	field := strings.TrimSpace(ute.Field)
	if field == "" {
		field = "body"
	}
	return validation.NewFieldError(field, "type"), true
}
