// Package smtp mails users about sign-ins from devices they have not used before.
package smtp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/JMURv/session-core/internal/config"
	md "github.com/JMURv/session-core/internal/models"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailServer struct {
	from   string
	admin  string
	domain string
	dialer sender
}

func New(conf config.Config) *EmailServer {
	return &EmailServer{
		from:   conf.Email.User,
		admin:  conf.Email.Admin,
		domain: fmt.Sprintf("%s://%s", conf.Server.Scheme, conf.Server.Domain),
		dialer: gomail.NewDialer(conf.Email.Server, conf.Email.Port, conf.Email.User, conf.Email.Pass),
	}
}

func (s *EmailServer) GetMessageBase(subject, toEmail string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	if s.admin != "" {
		m.SetHeader("Reply-To", s.admin)
	}
	return m
}

func (s *EmailServer) Send(m *gomail.Message) error {
	if err := s.dialer.DialAndSend(m); err != nil {
		zap.L().Error(
			"Failed to send an email",
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *EmailServer) NewDeviceSignIn(ctx context.Context, u *md.User, sess *md.Session) error {
	const op = "sessions.NewDeviceSignIn.smtp"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := ctx.Err(); err != nil {
		return err
	}

	m := s.GetMessageBase("New sign-in to your account", u.Email)
	m.SetBody("text/plain", newDeviceBody(s.domain, u, sess))
	return s.Send(m)
}

func newDeviceBody(domain string, u *md.User, s *md.Session) string {
	b := &strings.Builder{}
	name := u.Name
	if name == "" {
		name = u.Email
	}

	fmt.Fprintf(b, "Hi %s,\n\n", name)
	fmt.Fprintf(b, "Your account was just signed in from a new device.\n\n")
	fmt.Fprintf(b, "Device:   %s\n", s.Name)
	if s.IP != "" {
		fmt.Fprintf(b, "IP:       %s\n", s.IP)
	}
	if s.Location != "" {
		fmt.Fprintf(b, "Location: %s\n", s.Location)
	}
	fmt.Fprintf(b, "Time:     %s\n\n", s.CreatedAt.UTC().Format(time.RFC1123))
	fmt.Fprintf(b, "If this was not you, change your password and sign out of all sessions at:\n%s\n", domain)
	return b.String()
}
