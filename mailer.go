package goregistration

import (
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"
)

// Mailer dispatches the account activation message. The send is
// awaited; there is no retry here.
type Mailer interface {
	SendAccountActivation(ctx context.Context, email, token string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer builds a Mailer on top of an SMTP client. Auth is only
// configured when a username is set, so a local relay works without
// credentials.
func NewSMTPMailer(cfg SMTPConfig) (Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}

	return &smtpMailer{client: client, from: cfg.From}, nil
}

func (m *smtpMailer) SendAccountActivation(ctx context.Context, email, token string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}
	msg.Subject("Account Activation")
	msg.SetBodyString(mail.TypeTextHTML, fmt.Sprintf("Token is %s", token))

	return m.client.DialAndSendWithContext(ctx, msg)
}
