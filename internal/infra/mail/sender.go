package mail

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"quotation-portal/internal/pkg/config"
	"quotation-portal/internal/pkg/errs"
	"quotation-portal/internal/usecase/commands"

	"gopkg.in/gomail.v2"
)

// otpBodyTmpl is parsed once at startup; any edit error fails fast.
var otpBodyTmpl = template.Must(template.New("otp").Parse(
	`A one-time code was requested to {{.Verb}} the quotation "{{.Title}}".

Your code: {{.Code}}

It expires at {{.ExpiresAt}}. If you did not request this, you can ignore this message; requesting a new code invalidates this one.
`))

type otpBodyData struct {
	Verb      string
	Title     string
	Code      string
	ExpiresAt string
}

// EmailSender delivers OTP notifications over SMTP. It is the production
// commands.Notifier; failures are surfaced to the caller, which treats
// dispatch as best-effort.
type EmailSender struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

func NewEmailSender(cfg config.SMTPConfig) *EmailSender {
	return &EmailSender{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		password: cfg.Password,
		from:     cfg.From,
	}
}

func (s *EmailSender) NotifyOtpIssued(ctx context.Context, recipients []commands.Recipient, n commands.OtpIssuedNotification) error {
	if len(recipients) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	err := otpBodyTmpl.Execute(&body, otpBodyData{
		Verb:      strings.ToLower(n.Action.String()),
		Title:     n.QuotationTitle,
		Code:      n.Code,
		ExpiresAt: n.ExpiresAt.UTC().Format("2006-01-02 15:04 MST"),
	})
	if err != nil {
		return errs.Wrap(err, "failed to render OTP email body")
	}

	d := gomail.NewDialer(s.host, s.port, s.user, s.password)

	// Each stakeholder gets an individual message so addresses are not
	// disclosed across recipients.
	messages := make([]*gomail.Message, 0, len(recipients))
	for _, r := range recipients {
		m := gomail.NewMessage()
		m.SetHeader("From", s.from)
		m.SetHeader("To", r.Email)
		m.SetHeader("Subject", fmt.Sprintf("Confirmation code for quotation %q", n.QuotationTitle))
		m.SetBody("text/plain", body.String())
		messages = append(messages, m)
	}

	if err := d.DialAndSend(messages...); err != nil {
		return errs.Wrap(err, "failed to send OTP email")
	}

	return nil
}
