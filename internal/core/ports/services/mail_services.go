package services

import "context"

// MailSender is the outbound transactional mail transport. Implementations must
// bound delivery time by the context so a slow provider cannot stall callers.
type MailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
