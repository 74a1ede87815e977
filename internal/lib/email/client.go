// Package email sends transactional mail through Resend.
//
// Bodies are rendered from HTML templates embedded in the binary.
package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/deppfellow/go-retail/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

const (
	senderName    = "Retail Inventory"
	senderAddress = "onboarding@resend.dev"
)

// ErrDisabled is returned when no Resend API key is configured.
var ErrDisabled = errors.New("email delivery is disabled: no resend api key")

// sender is the part of the Resend emails API the client uses.
type sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Client wraps the Resend client and a logger.
type Client struct {
	emails  sender
	logger  *zerolog.Logger
	enabled bool
}

// NewClient creates an email Client from the integration config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	key := cfg.Integration.ResendAPIKey
	return &Client{
		emails:  resend.NewClient(key).Emails,
		logger:  logger,
		enabled: key != "",
	}
}

// Enabled reports whether the client can deliver mail.
func (c *Client) Enabled() bool {
	return c.enabled
}

// Render executes the named template with data.
func Render(templateName Template, data map[string]string) (string, error) {
	tmpl, err := template.ParseFS(templates, fmt.Sprintf("templates/emails/%s.html", templateName))
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}

	return body.String(), nil
}

// SendEmail renders templateName with data and sends it to a single recipient.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	if !c.enabled {
		return ErrDisabled
	}

	html, err := Render(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", senderName, senderAddress),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	sent, err := c.emails.Send(params)
	if err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	c.logger.Debug().
		Str("email_id", sent.Id).
		Str("template", string(templateName)).
		Msg("email sent")

	return nil
}
