package goregistration

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mysh3ll/goregistration/i18n"
)

func newTestValidator(t *testing.T) *RequestValidator {
	t.Helper()
	tr, err := i18n.NewTranslator()
	assert.Nil(t, err)
	return NewRequestValidator(tr)
}

func validRequest() registerUserRequest {
	return registerUserRequest{Username: "user1", Email: "user1@mail.com", Password: "PassWord1"}
}

func TestValidate_FieldRules(t *testing.T) {
	tests := []struct {
		field       string
		value       string
		wantMessage string
	}{
		{"username", "", "Username cannot be null"},
		{"username", "usr", "Must have min 4 and max 32 characters"},
		{"username", strings.Repeat("x", 33), "Must have min 4 and max 32 characters"},
		{"email", "", "Email cannot be null"},
		{"email", "mail.com", "Email is not valid"},
		{"email", "user.mail.com", "Email is not valid"},
		{"email", "user@mail", "Email is not valid"},
		{"password", "", "Password cannot be null"},
		{"password", "PassW", "Password must be at least 6 characters"},
		{"password", "alllowercase", "Password must have at least 1 uppercase, 1 lowercase letter and 1 number"},
		{"password", "ALLUPPERCASE", "Password must have at least 1 uppercase, 1 lowercase letter and 1 number"},
		{"password", "1234567890", "Password must have at least 1 uppercase, 1 lowercase letter and 1 number"},
		{"password", "lowerandUPPER", "Password must have at least 1 uppercase, 1 lowercase letter and 1 number"},
		{"password", "lower4nd1234", "Password must have at least 1 uppercase, 1 lowercase letter and 1 number"},
		{"password", "UPPER12345", "Password must have at least 1 uppercase, 1 lowercase letter and 1 number"},
	}

	v := newTestValidator(t)

	for _, tt := range tests {
		req := validRequest()
		var got *string
		switch tt.field {
		case "username":
			req.Username = tt.value
		case "email":
			req.Email = tt.value
		case "password":
			req.Password = tt.value
		}

		errs := v.Validate(req, "")
		switch tt.field {
		case "username":
			got = &errs.Username
		case "email":
			got = &errs.Email
		case "password":
			got = &errs.Password
		}

		assert.Equal(t, tt.wantMessage, *got, "field %s value %q", tt.field, tt.value)
	}
}

func TestValidate_ValidRequestHasNoErrors(t *testing.T) {
	v := newTestValidator(t)

	errs := v.Validate(validRequest(), "")

	assert.False(t, errs.Any())
}

func TestValidate_AllFieldsCheckedIndependently(t *testing.T) {
	v := newTestValidator(t)

	errs := v.Validate(registerUserRequest{}, "")

	assert.Equal(t, "Username cannot be null", errs.Username)
	assert.Equal(t, "Email cannot be null", errs.Email)
	assert.Equal(t, "Password cannot be null", errs.Password)
}

func TestValidate_IsIdempotent(t *testing.T) {
	v := newTestValidator(t)
	req := registerUserRequest{Username: "usr", Email: "user@mail", Password: "short"}

	first := v.Validate(req, "")
	second := v.Validate(req, "")

	assert.Equal(t, first, second)
}

func TestValidate_FrenchLocale(t *testing.T) {
	v := newTestValidator(t)

	errs := v.Validate(registerUserRequest{Email: "user1@mail.com", Password: "PassWord1"}, "fr")

	assert.Equal(t, "Le nom d'utilisateur ne peut pas être nul", errs.Username)
}

func TestValidate_UnknownLocaleFallsBackToEnglish(t *testing.T) {
	v := newTestValidator(t)

	errs := v.Validate(registerUserRequest{Email: "user1@mail.com", Password: "PassWord1"}, "xx")

	assert.Equal(t, "Username cannot be null", errs.Username)
}

func TestValidationErrors_MarshalsFieldsInOrder(t *testing.T) {
	errs := ValidationErrors{
		Username: "Username cannot be null",
		Email:    "Email cannot be null",
	}

	b, err := json.Marshal(errs)

	assert.Nil(t, err)
	assert.Equal(t, `{"username":"Username cannot be null","email":"Email cannot be null"}`, string(b))
}

func TestValidationErrors_MarshalSkipsPassingFields(t *testing.T) {
	errs := ValidationErrors{Password: "Password cannot be null"}

	b, err := json.Marshal(errs)

	assert.Nil(t, err)
	assert.Equal(t, `{"password":"Password cannot be null"}`, string(b))
}
