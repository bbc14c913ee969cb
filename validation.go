package goregistration

import (
	"bytes"
	"encoding/json"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/Mysh3ll/goregistration/i18n"
)

// Message ids resolved through the translation catalogs.
const (
	msgUsernameNull    = "username.null"
	msgUsernameSize    = "username.size"
	msgEmailNull       = "email.null"
	msgEmailInvalid    = "email.invalid"
	msgEmailInUse      = "email.inuse"
	msgPasswordNull    = "password.null"
	msgPasswordSize    = "password.size"
	msgPasswordPattern = "password.pattern"
	msgUserCreated     = "user.created"
	msgEmailFailure    = "email.failure"
	msgServerError     = "server.error"
)

var (
	// One @ with non-empty content before it and a dot-separated
	// domain after it. Rejects "mail.com", "user.mail.com", "user@mail".
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	upperRegexp = regexp.MustCompile(`[A-Z]`)
	lowerRegexp = regexp.MustCompile(`[a-z]`)
	digitRegexp = regexp.MustCompile(`[0-9]`)
)

// ValidationErrors holds at most one localized message per request
// field. Reporting order is username, email, password.
type ValidationErrors struct {
	Username string
	Email    string
	Password string
}

func (v ValidationErrors) Any() bool {
	return v.Username != "" || v.Email != "" || v.Password != ""
}

func (v ValidationErrors) Error() string {
	return "invalid registration request"
}

// MarshalJSON emits the failing fields as an object whose keys appear
// in reporting order. encoding/json sorts map keys, so the object is
// written by hand.
func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	fields := []struct {
		name, msg string
	}{
		{"username", v.Username},
		{"email", v.Email},
		{"password", v.Password},
	}

	first := true
	for _, f := range fields {
		if f.msg == "" {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		name, err := json.Marshal(f.name)
		if err != nil {
			return nil, err
		}
		msg, err := json.Marshal(f.msg)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(msg)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RequestValidator checks a registration request against the field
// rules and localizes the resulting messages. Stateless and pure: the
// same request and locale always produce the same error set.
type RequestValidator struct {
	tr *i18n.Translator
}

func NewRequestValidator(tr *i18n.Translator) *RequestValidator {
	return &RequestValidator{tr: tr}
}

// Validate evaluates every field independently; the first failing rule
// per field wins. An empty set means the request is valid.
func (v *RequestValidator) Validate(req registerUserRequest, locale string) ValidationErrors {
	var errs ValidationErrors

	if err := validation.Validate(req.Username,
		validation.Required.Error(msgUsernameNull),
		validation.RuneLength(4, 32).Error(msgUsernameSize),
	); err != nil {
		errs.Username = v.tr.Localize(locale, err.Error())
	}

	if err := validation.Validate(req.Email,
		validation.Required.Error(msgEmailNull),
		validation.Match(emailRegexp).Error(msgEmailInvalid),
	); err != nil {
		errs.Email = v.tr.Localize(locale, err.Error())
	}

	if err := validation.Validate(req.Password,
		validation.Required.Error(msgPasswordNull),
		validation.RuneLength(6, 0).Error(msgPasswordSize),
		validation.Match(upperRegexp).Error(msgPasswordPattern),
		validation.Match(lowerRegexp).Error(msgPasswordPattern),
		validation.Match(digitRegexp).Error(msgPasswordPattern),
	); err != nil {
		errs.Password = v.tr.Localize(locale, err.Error())
	}

	return errs
}
