package mail

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"

	"github.com/jhoicas/ecommerce-admin-api/pkg/config"
)

// Mailer envía los correos transaccionales del panel (recuperación de contraseña).
type Mailer interface {
	SendPasswordReset(to string) error
}

// New devuelve un mailer SMTP si hay host configurado; si no, uno que solo
// registra en el log (suficiente para el stub de forgot-password).
func New(cfg config.SMTPConfig, logger zerolog.Logger) Mailer {
	if cfg.Host == "" {
		return &logMailer{logger: logger.With().Str("component", "log-mailer").Logger()}
	}
	return &smtpMailer{cfg: cfg}
}

type smtpMailer struct {
	cfg config.SMTPConfig
}

func (m *smtpMailer) SendPasswordReset(to string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	msg := "From: " + m.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: Recuperación de contraseña\r\n" +
		"MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n" +
		"Se recibió una solicitud de recuperación de contraseña para esta cuenta.\r\n" +
		"Si no fuiste tú, ignora este mensaje.\r\n"

	// Sin auth: pensado para relay local o MailHog en desarrollo.
	return smtp.SendMail(addr, nil, m.cfg.From, []string{to}, []byte(msg))
}

type logMailer struct {
	logger zerolog.Logger
}

func (m *logMailer) SendPasswordReset(to string) error {
	m.logger.Info().
		Str("to", to).
		Msg("simulando envío de correo de recuperación de contraseña")
	return nil
}
