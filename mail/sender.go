// Package mail provides an email-to-SMS implementation of wotd.Sender.
//
// Carriers expose gateways that turn email into text messages: mail
// sent to <number>@<gateway> is delivered to the phone as an SMS. The
// sender relays through an authenticated SMTP host, so no SMS provider
// account is involved.
package mail

import (
	"context"

	"github.com/fwojciec/wotd"
	"github.com/wneessen/go-mail"
)

// Relay and gateway defaults.
const (
	// DefaultHost is Gmail's SMTP relay, used with an app password.
	DefaultHost = "smtp.gmail.com"

	// DefaultPort is the implicit-TLS SMTP port.
	DefaultPort = 465

	// DefaultGateway is AT&T's email-to-SMS gateway domain.
	DefaultGateway = "txt.att.net"
)

// Ensure Sender implements wotd.Sender at compile time.
var _ wotd.Sender = (*Sender)(nil)

// Sender delivers messages through a carrier email-to-SMS gateway via
// an authenticated SMTP relay.
type Sender struct {
	client  *mail.Client
	from    string
	host    string
	port    int
	gateway string
}

// Option configures a Sender.
type Option func(*Sender)

// WithHost sets the SMTP relay host.
// Defaults to DefaultHost if not specified.
func WithHost(host string) Option {
	return func(s *Sender) {
		s.host = host
	}
}

// WithPort sets the SMTP relay port.
// Defaults to DefaultPort if not specified.
func WithPort(port int) Option {
	return func(s *Sender) {
		s.port = port
	}
}

// WithGateway sets the carrier gateway domain.
// Defaults to DefaultGateway if not specified.
func WithGateway(gateway string) Option {
	return func(s *Sender) {
		s.gateway = gateway
	}
}

// NewSender creates a Sender relaying as username, authenticated with
// password. For Gmail the password must be an app password, not the
// account password.
func NewSender(username, password string, opts ...Option) (*Sender, error) {
	s := &Sender{
		from:    username,
		host:    DefaultHost,
		port:    DefaultPort,
		gateway: DefaultGateway,
	}
	for _, opt := range opts {
		opt(s)
	}

	client, err := mail.NewClient(s.host,
		mail.WithPort(s.port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
	)
	if err != nil {
		return nil, wotd.Errorf(wotd.EINTERNAL, "create smtp client: %v", err)
	}
	s.client = client

	return s, nil
}

// Address returns the gateway email address for a phone number.
func (s *Sender) Address(phone string) string {
	return phone + "@" + s.gateway
}

// Send delivers the message to the phone number through the gateway.
func (s *Sender) Send(ctx context.Context, message, phone string) error {
	if !validPhone(phone) {
		return wotd.Errorf(wotd.EINVALID, "phone number must be exactly 10 digits, got %q", phone)
	}

	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return wotd.Errorf(wotd.EINVALID, "sender address %q: %v", s.from, err)
	}
	if err := msg.To(s.Address(phone)); err != nil {
		return wotd.Errorf(wotd.EINVALID, "gateway address %q: %v", s.Address(phone), err)
	}

	// An empty subject keeps the delivered SMS to the body alone;
	// gateways prepend the subject to the text when one is set.
	msg.Subject("")
	msg.SetBodyString(mail.TypeTextPlain, message)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return wotd.Errorf(wotd.EUNAVAILABLE, "send message: %v", err)
	}

	return nil
}

func validPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
