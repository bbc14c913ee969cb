package goregistration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mysh3ll/goregistration/i18n"
)

type Service interface {
	RegisterNewUser(ctx context.Context, req registerUserRequest, locale string) (*User, error)
}

type service struct {
	users     Repository
	mailer    Mailer
	validator *RequestValidator
	tr        *i18n.Translator
}

func NewService(users Repository, mailer Mailer, tr *i18n.Translator) Service {
	return &service{
		users:     users,
		mailer:    mailer,
		validator: NewRequestValidator(tr),
		tr:        tr,
	}
}

type registerUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterNewUser runs the signup pipeline: validate, check for an
// existing email, hash the password, generate the activation token,
// persist the account inactive, then dispatch the activation email.
// The steps run strictly in that order; each depends on the previous
// one's output.
//
// The FindByEmail check is a pre-flight courtesy only. The unique
// constraint enforced by Store decides races, and a duplicate detected
// there is reported exactly like one caught up front. When the email
// dispatch fails the persisted account is kept; cleaning up accounts
// that never activate is the activation flow's concern.
func (svc *service) RegisterNewUser(ctx context.Context, req registerUserRequest, locale string) (*User, error) {
	if errs := svc.validator.Validate(req, locale); errs.Any() {
		return nil, errs
	}

	if _, err := svc.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, svc.emailInUse(locale)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("checking existing email: %w", err)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	token, err := generateActivationToken()
	if err != nil {
		return nil, fmt.Errorf("generating activation token: %w", err)
	}

	user := &User{
		ID:              nextID(),
		Username:        req.Username,
		Email:           req.Email,
		PasswordHash:    hash,
		Inactive:        true,
		ActivationToken: token,
		CreatedAt:       time.Now().UTC(),
	}

	if err := svc.users.Store(ctx, user); err != nil {
		if errors.Is(err, ErrExistingEmail) {
			return nil, svc.emailInUse(locale)
		}
		return nil, fmt.Errorf("saving user: %w", err)
	}

	if err := svc.mailer.SendAccountActivation(ctx, user.Email, user.ActivationToken); err != nil {
		return user, fmt.Errorf("%w: %v", ErrSendingActivation, err)
	}

	return user, nil
}

// emailInUse reports a duplicate email in the same shape as a field
// validation failure, so callers see one uniform error contract.
func (svc *service) emailInUse(locale string) ValidationErrors {
	return ValidationErrors{Email: svc.tr.Localize(locale, msgEmailInUse)}
}
