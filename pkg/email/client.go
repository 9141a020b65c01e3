// Package email sends alert emails over SMTP.
//
// The gateway is constructed once from configuration. When email alerts are
// disabled or the SMTP settings are incomplete it stays in a disabled state:
// every Send becomes a logged no-op returning false, and no connection is
// ever attempted.
package email

import (
	"regexp"
	"strings"

	"github.com/wb-go/wbf/zlog"
	mail "gopkg.in/mail.v2"
)

// Settings holds the SMTP transport configuration.
type Settings struct {
	Enabled  bool
	SMTPHost string
	SMTPPort int
	Username string
	Password string
	From     string
}

// Message is one email to deliver.
type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string // optional; derived from HTML when empty
}

// Gateway delivers alert emails through a configured SMTP transport.
type Gateway struct {
	settings Settings
	enabled  bool
}

// NewGateway creates a Gateway. Missing transport settings disable it.
func NewGateway(settings Settings) *Gateway {
	g := &Gateway{settings: settings}

	if !settings.Enabled {
		zlog.Logger.Info().Msg("email alerts disabled by configuration")
		return g
	}

	if settings.SMTPHost == "" || settings.SMTPPort == 0 || settings.Username == "" || settings.Password == "" {
		zlog.Logger.Warn().Msg("incomplete SMTP configuration, email alerts disabled")
		return g
	}

	g.enabled = true
	zlog.Logger.Info().Str("user", settings.Username).Msg("email gateway configured")

	return g
}

// Enabled reports whether the gateway will actually send mail.
func (g *Gateway) Enabled() bool {
	return g.enabled
}

// Send delivers one message and reports whether it went out. Failures are
// logged, never returned as errors: email is a best-effort side channel.
func (g *Gateway) Send(msg Message) bool {
	if !g.enabled {
		zlog.Logger.Debug().Str("subject", msg.Subject).Msg("email not sent, gateway disabled")
		return false
	}

	text := msg.Text
	if text == "" {
		text = htmlToText(msg.HTML)
	}

	m := mail.NewMessage()
	m.SetHeader("From", g.settings.From)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", text)
	m.AddAlternative("text/html", msg.HTML)

	dialer := mail.NewDialer(g.settings.SMTPHost, g.settings.SMTPPort, g.settings.Username, g.settings.Password)

	if err := dialer.DialAndSend(m); err != nil {
		zlog.Logger.Error().Err(err).Strs("to", msg.To).Msg("failed to send email")
		return false
	}

	zlog.Logger.Info().Strs("to", msg.To).Str("subject", msg.Subject).Msg("email sent")
	return true
}

var (
	brRe   = regexp.MustCompile(`(?i)<br\s*/?>`)
	pRe    = regexp.MustCompile(`(?i)</p>`)
	tagRe  = regexp.MustCompile(`<[^>]+>`)
	nbspRe = regexp.MustCompile(`&nbsp;`)
)

// htmlToText derives a plain-text fallback with a simple tag-stripping
// heuristic, enough for text-only mail clients.
func htmlToText(html string) string {
	text := brRe.ReplaceAllString(html, "\n")
	text = pRe.ReplaceAllString(text, "\n\n")
	text = tagRe.ReplaceAllString(text, "")
	text = nbspRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
