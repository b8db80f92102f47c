package mailer

import (
	"fmt"
	"time"

	"github.com/movilidad-dev/movilidad/internal/config"
	"github.com/sirupsen/logrus"
	mail "github.com/xhit/go-simple-mail/v2"
)

// Mailer sends password-recovery mail over SMTP. When no SMTP host is
// configured the mailer is disabled and sends are logged and dropped;
// the forgot-password endpoint behaves identically either way.
type Mailer struct {
	cfg     *config.Config
	enabled bool
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		cfg:     cfg,
		enabled: cfg.SMTPHost != "",
	}
}

// SendPasswordRecovery delivers a recovery message to the given address.
// No check is made that the address belongs to a registered account.
func (m *Mailer) SendPasswordRecovery(to string) error {
	if !m.enabled {
		logrus.WithField("to", to).Debug("SMTP not configured, skipping recovery mail")
		return nil
	}

	server := mail.NewSMTPClient()
	server.Host = m.cfg.SMTPHost
	server.Port = m.cfg.SMTPPort
	server.Username = m.cfg.SMTPUser
	server.Password = m.cfg.SMTPPass
	server.Encryption = mail.EncryptionSTARTTLS
	server.ConnectTimeout = 10 * time.Second
	server.SendTimeout = 10 * time.Second

	client, err := server.Connect()
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	msg := mail.NewMSG()
	msg.SetFrom(m.cfg.SMTPFrom).
		AddTo(to).
		SetSubject("Password recovery").
		SetBody(mail.TextPlain, "A password reset was requested for this address. If this was not you, ignore this message.")

	if msg.Error != nil {
		return msg.Error
	}

	return msg.Send(client)
}
