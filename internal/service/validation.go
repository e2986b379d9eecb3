package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared request validator. A single instance caches the
// parsed struct tags, so all services reuse it.
var validate = validator.New(validator.WithRequiredStructEnabled())

// checkRequest runs struct-tag validation on an inbound request body and
// normalises failures to [ErrInvalidDataProvided] with the offending fields
// attached.
func checkRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
