package sessions

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ImageSessionQuery filters, sorts and paginates image session listings
type ImageSessionQuery struct {
	Name            string    `validate:"omitempty,max=255"`
	DateTimeCreated time.Time `validate:"omitempty"`
	Limit           int       `validate:"omitempty,gt=0"`
	Offset          int       `validate:"omitempty,gte=0"`
	SortBy          string    `validate:"omitempty,oneof=id name date_time_created"`
	SortOrder       string    `validate:"omitempty,oneof=asc desc"`
}

// NewImageSessionQuery creates an empty query
func NewImageSessionQuery() *ImageSessionQuery {
	return &ImageSessionQuery{}
}

// Validate for validating ImageSessionQuery struct
func (q *ImageSessionQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}
