package notify

import (
	"context"
	"errors"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"csrwatch/internal/config"
)

func writeMailList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mailList.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleList = `{
  "groups": [
    {"name": "CSR_checker", "members": ["ops@example.com", "billing@example.com"]},
    {"name": "empty_group", "members": []}
  ]
}`

func TestResolveGroup(t *testing.T) {
	path := writeMailList(t, sampleList)

	members, err := ResolveGroup(path, "CSR_checker")
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 2 || members[0] != "ops@example.com" {
		t.Fatalf("unexpected members %v", members)
	}
}

func TestResolveGroup_Unknown(t *testing.T) {
	path := writeMailList(t, sampleList)

	if _, err := ResolveGroup(path, "nobody"); !errors.Is(err, ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup, got %v", err)
	}
	if _, err := ResolveGroup(path, "empty_group"); !errors.Is(err, ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup for empty group, got %v", err)
	}
}

func TestSMTPService_SendsOnePlainTextMessage(t *testing.T) {
	path := writeMailList(t, sampleList)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotPayload string
	calls := 0

	svc := &smtpService{
		addr:     "mail.example.com:25",
		mailList: path,
		from:     "SCCM@host1",
		send: func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			calls++
			gotAddr, gotFrom, gotTo, gotPayload = addr, from, to, string(msg)
			return nil
		},
	}

	err := svc.Send(context.Background(), Message{
		Group:       "CSR_checker",
		Subject:     "SCCM CSR processing error",
		Body:        "File not found: /upload/x/20240605.txt",
		Attachments: []string{"/tmp/logs/checkMCS_20240605.log"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if calls != 1 {
		t.Fatalf("expected exactly one send, got %d", calls)
	}
	if gotAddr != "mail.example.com:25" || gotFrom != "SCCM@host1" {
		t.Fatalf("addr/from mismatch: %q %q", gotAddr, gotFrom)
	}
	if len(gotTo) != 2 {
		t.Fatalf("recipients not resolved from group: %v", gotTo)
	}
	if !strings.Contains(gotPayload, "Subject: SCCM CSR processing error") {
		t.Fatalf("subject missing: %q", gotPayload)
	}
	if !strings.Contains(gotPayload, "File not found") {
		t.Fatalf("body missing: %q", gotPayload)
	}
	if !strings.Contains(gotPayload, "checkMCS_20240605.log") {
		t.Fatalf("attachment reference missing: %q", gotPayload)
	}
}

func TestSMTPService_UnknownGroupDoesNotSend(t *testing.T) {
	path := writeMailList(t, sampleList)
	svc := &smtpService{
		addr:     "mail.example.com:25",
		mailList: path,
		send: func(string, smtp.Auth, string, []string, []byte) error {
			t.Fatal("send must not be called for an unknown group")
			return nil
		},
	}

	err := svc.Send(context.Background(), Message{Group: "nobody", Subject: "x", Body: "y"})
	if !errors.Is(err, ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup, got %v", err)
	}
}

func TestSMTPService_HonorsCancelledContext(t *testing.T) {
	svc := &smtpService{
		addr: "mail.example.com:25",
		send: func(string, smtp.Auth, string, []string, []byte) error {
			t.Fatal("send must not be called after cancellation")
			return nil
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := svc.Send(ctx, Message{Group: "CSR_checker"}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestNewService_NoopWithoutSMTP(t *testing.T) {
	cfg := config.Default()
	cfg.Notifications.SMTPAddr = ""
	svc := NewService(&cfg)
	if err := svc.Send(context.Background(), Message{Group: "anything"}); err != nil {
		t.Fatalf("noop service should never fail: %v", err)
	}
}
