package bootstrap

import (
	"quotation-portal/internal/infra/mail"
	"quotation-portal/internal/pkg/config"
	"quotation-portal/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *mail.EmailSender {
				return mail.NewEmailSender(cfg.SMTP)
			},
			fx.As(new(commands.Notifier)),
		),
	),
)
