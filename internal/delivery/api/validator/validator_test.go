package validator

import (
	"testing"

	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type riskRequest struct {
	MaxVolume float64 `json:"maxVolume" validate:"gt=0"`
}

type accountRequest struct {
	AccountNumber string       `json:"accountNumber" validate:"required"`
	Email         string       `json:"email,omitempty" validate:"omitempty,email"`
	Status        string       `json:"status" validate:"omitempty,oneof=active disabled"`
	Risk          *riskRequest `json:"riskSettings,omitempty" validate:"omitempty"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()

	require.NoError(t, cv.Validate(&accountRequest{AccountNumber: "123"}))

	err := cv.Validate(&accountRequest{
		Email:  "nope",
		Status: "paused",
		Risk:   &riskRequest{MaxVolume: 0},
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, domainerrors.FieldErrors{
		"accountNumber":          "required",
		"email":                  "must be a valid email address",
		"status":                 "must be one of active disabled",
		"riskSettings.maxVolume": "must satisfy gt=0",
	}, validationErr.Fields())
}
