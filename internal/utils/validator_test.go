// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordFixture struct {
	Password string `validate:"strong_password"`
}

type usernameFixture struct {
	Username string `validate:"username"`
}

func TestStrongPasswordValidation(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Str0ngPass", true},
		{"Sh0rt", false},           // too short
		{"alllowercase1", false},   // no uppercase
		{"ALLUPPERCASE1", false},   // no lowercase
		{"NoNumbersHere", false},   // no digit
		{"G00d_enough_Pass", true},
	}

	for _, tt := range tests {
		err := ValidateStruct(&passwordFixture{Password: tt.password})
		if tt.valid {
			assert.NoError(t, err, "password %q", tt.password)
		} else {
			assert.Error(t, err, "password %q", tt.password)
		}
	}
}

func TestUsernameValidation(t *testing.T) {
	tests := []struct {
		username string
		valid    bool
	}{
		{"alice", true},
		{"alice_99", true},
		{"ab", false},           // too short
		{"has space", false},
		{"has-dash", false},
		{"ALICE123", true},
	}

	for _, tt := range tests {
		err := ValidateStruct(&usernameFixture{Username: tt.username})
		if tt.valid {
			assert.NoError(t, err, "username %q", tt.username)
		} else {
			assert.Error(t, err, "username %q", tt.username)
		}
	}
}

func TestGetValidationErrors(t *testing.T) {
	type form struct {
		Email  string `validate:"required,email"`
		Rating int    `validate:"min=1,max=5"`
	}

	err := ValidateStruct(&form{Email: "not-an-email", Rating: 9})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "email", errs[0].Tag)
	assert.Equal(t, "rating", errs[1].Field)
	assert.Equal(t, "max", errs[1].Tag)
}

func TestGetValidationErrorsNonValidatorError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(assert.AnError))
}

func TestGenerateRandomString(t *testing.T) {
	s, err := GenerateRandomString(16)
	require.NoError(t, err)
	assert.Len(t, s, 16)

	other, err := GenerateRandomString(16)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)
}
