package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Username string `validate:"required,min=3"`
	Capacity int    `validate:"required,gt=0"`
	Role     string `validate:"required,oneof=admin customer"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(&sampleRequest{Username: "juan", Capacity: 60, Role: "customer"})
	assert.Nil(t, errs)

	errs = ValidateStruct(&sampleRequest{Username: "ab", Role: "pilot"})
	assert.Equal(t, "Minimum length is 3", errs["Username"])
	assert.Equal(t, "This field is required", errs["Capacity"])
	assert.Equal(t, "Must be one of: admin, customer", errs["Role"])
}

func TestFormatValidationErrors(t *testing.T) {
	out := FormatValidationErrors(map[string]string{"Username": "This field is required"})
	assert.Equal(t, "Username: This field is required", out)

	assert.Empty(t, FormatValidationErrors(nil))
}
