package notify

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"csrwatch/internal/config"
)

// ErrUnknownGroup marks a distribution group absent from the mailing list.
var ErrUnknownGroup = errors.New("unknown distribution group")

// Message is one consolidated run report.
type Message struct {
	// Group names the distribution-list entry that selects the recipients.
	Group   string
	Subject string
	// From overrides the sender; empty falls back to the service default.
	From string
	Body string
	// Attachments are referenced at the end of the body rather than MIME
	// encoded; operators follow the paths on the host.
	Attachments []string
}

// Service is the notification surface exposed to the checkers.
type Service interface {
	// Send delivers one report. It is invoked at most once per run.
	Send(ctx context.Context, msg Message) error
}

// NewService builds an SMTP-backed notification service. When no SMTP
// address is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	addr := strings.TrimSpace(cfg.Notifications.SMTPAddr)
	if addr == "" {
		return noopService{}
	}
	return &smtpService{
		addr:     addr,
		mailList: cfg.Notifications.MailList,
		from:     cfg.Notifications.From,
		send:     smtp.SendMail,
	}
}

type smtpService struct {
	addr     string
	mailList string
	from     string

	// send is swapped out in tests; net/smtp has no test server.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func (s *smtpService) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	recipients, err := ResolveGroup(s.mailList, msg.Group)
	if err != nil {
		return err
	}

	from := strings.TrimSpace(msg.From)
	if from == "" {
		from = s.from
	}
	if from == "" {
		from = defaultFrom()
	}

	payload := buildPayload(from, recipients, msg)
	if err := s.send(s.addr, nil, from, recipients, payload); err != nil {
		return fmt.Errorf("send notification email: %w", err)
	}
	return nil
}

func buildPayload(from string, recipients []string, msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(recipients, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	if len(msg.Attachments) > 0 {
		b.WriteString("\r\n\r\nReferenced files:\r\n")
		for _, path := range msg.Attachments {
			fmt.Fprintf(&b, "  %s\r\n", path)
		}
	}
	return []byte(b.String())
}

func defaultFrom() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "localhost"
	}
	return fmt.Sprintf("SCCM_%s@%s", hostname, hostname)
}

type noopService struct{}

func (noopService) Send(context.Context, Message) error { return nil }
