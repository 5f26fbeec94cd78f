package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email  string `json:"email" validate:"required,email"`
	Rating int    `json:"rating" validate:"gte=1,lte=5"`
	Status string `json:"status" validate:"omitempty,oneof=pending hired"`
}

func TestValidateOK(t *testing.T) {
	v := New()
	err := v.Validate(&sampleInput{Email: "jane@mail.test", Rating: 3})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&sampleInput{Rating: 9, Status: "shortlisted"})
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)

	assert.Contains(t, ve.Errors, "email")
	assert.Contains(t, ve.Errors, "rating")
	assert.Contains(t, ve.Errors, "status")
	assert.NotContains(t, ve.Errors, "Email")
}

func TestValidateOneofMessage(t *testing.T) {
	v := New()
	err := v.Validate(&sampleInput{Email: "jane@mail.test", Rating: 2, Status: "nope"})
	require.Error(t, err)

	ve := err.(*ValidationError)
	assert.Contains(t, ve.Errors["status"], "pending")
}
