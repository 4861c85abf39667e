// Package mailer delivers contact-form submissions to the site admin over
// SMTP.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"
)

// Config carries the SMTP connection and addressing settings.
type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	UseTLS     bool
	AdminEmail string
	From       string // defaults to Username
}

// Enabled reports whether enough settings are present to send mail.
func (c Config) Enabled() bool {
	return c.Host != "" && c.Port > 0 && c.Username != "" && c.Password != "" && c.AdminEmail != ""
}

// Submission is one contact-form entry.
type Submission struct {
	Name    string
	Company string
	Email   string
	Message string
}

// Mailer sends contact notifications.
type Mailer struct {
	cfg Config
}

// New returns a mailer for the given settings.
func New(cfg Config) *Mailer {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &Mailer{cfg: cfg}
}

// SendContact emails the submission to the admin address, with Reply-To set
// to the submitter so the admin can answer directly.
func (m *Mailer) SendContact(ctx context.Context, sub Submission) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("mailer: from address: %w", err)
	}
	if err := msg.To(m.cfg.AdminEmail); err != nil {
		return fmt.Errorf("mailer: admin address: %w", err)
	}
	if err := msg.ReplyTo(sub.Email); err != nil {
		return fmt.Errorf("mailer: reply-to address: %w", err)
	}
	msg.Subject("[官网咨询] " + sub.Name)
	msg.SetBodyString(mail.TypeTextPlain, formatBody(sub))

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	}
	if m.cfg.UseTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("mailer: smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	return nil
}

func formatBody(sub Submission) string {
	company := strings.TrimSpace(sub.Company)
	if company == "" {
		company = "（未填写）"
	}
	return strings.Join([]string{
		"有新的官网咨询提交：",
		"",
		"姓名：" + sub.Name,
		"公司：" + company,
		"邮箱：" + sub.Email,
		"内容：",
		sub.Message,
	}, "\n")
}
