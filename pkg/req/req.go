package req

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Decode - reads a JSON body into T and runs the struct's validate tags.
// Unknown fields are ignored.
func Decode[T any](body io.Reader) (T, error) {
	var payload T

	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return payload, fmt.Errorf("invalid json: %w", err)
	}

	if err := validate.Struct(payload); err != nil {
		return payload, fmt.Errorf("invalid request: %w", err)
	}

	return payload, nil
}
