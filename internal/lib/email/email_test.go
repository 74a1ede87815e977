package email

import (
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "em_1"}, nil
}

func newTestClient(s sender, enabled bool) *Client {
	logger := zerolog.Nop()
	return &Client{emails: s, logger: &logger, enabled: enabled}
}

func TestRender_LowStockPreview(t *testing.T) {
	html, err := Render(TemplateLowStock, PreviewData[TemplateLowStock])

	require.NoError(t, err)
	assert.Contains(t, html, "Arabica Beans 1kg")
	assert.Contains(t, html, "product #42")
	assert.Contains(t, html, "threshold of 5")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)

	assert.ErrorContains(t, err, "failed to parse email template missing")
}

func TestSendLowStockAlert(t *testing.T) {
	fake := &fakeSender{}
	client := newTestClient(fake, true)

	err := client.SendLowStockAlert("ops@example.com", LowStockAlert{
		ProductID:     7,
		ProductName:   "Filters",
		StockQuantity: -2,
		Threshold:     5,
	})

	require.NoError(t, err)
	require.Len(t, fake.sent, 1)
	assert.Equal(t, []string{"ops@example.com"}, fake.sent[0].To)
	assert.Equal(t, "Low stock: Filters", fake.sent[0].Subject)
	assert.Contains(t, fake.sent[0].Html, "<strong>-2</strong>")
}

func TestSendEmail_Disabled(t *testing.T) {
	fake := &fakeSender{}
	client := newTestClient(fake, false)

	err := client.SendEmail("ops@example.com", "hi", TemplateLowStock, nil)

	assert.ErrorIs(t, err, ErrDisabled)
	assert.Empty(t, fake.sent)
}

func TestSendEmail_ProviderError(t *testing.T) {
	client := newTestClient(&fakeSender{err: errors.New("rate limited")}, true)

	err := client.SendEmail("ops@example.com", "hi", TemplateLowStock, PreviewData[TemplateLowStock])

	assert.ErrorContains(t, err, "failed to send email: rate limited")
}
