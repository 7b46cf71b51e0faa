package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/CareSetu/health_portal_app/internal/apperrors"
	portssvc "github.com/CareSetu/health_portal_app/internal/core/ports/services"
	"github.com/CareSetu/health_portal_app/internal/platform/config"
	"gopkg.in/gomail.v2"
)

// SMTPSender delivers transactional HTML mail over SMTP using gomail.
type SMTPSender struct {
	dialer  *gomail.Dialer
	from    string
	timeout time.Duration
}

// NewSMTPSender creates an SMTP-backed mail sender from config.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		dialer:  gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:    cfg.MailFrom,
		timeout: cfg.MailTimeout,
	}
}

// Ensure SMTPSender implements the MailSender port
var _ portssvc.MailSender = (*SMTPSender)(nil)

// Send delivers one message. Delivery is bounded by the configured mail
// timeout and raced against the caller's context, whichever ends first, so a
// hung SMTP dial cannot stall a request or wedge a background pass; on timeout
// the send is reported as a delivery failure, never a silent success.
func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrMailDelivery, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", apperrors.ErrMailDelivery, ctx.Err())
	}
}
