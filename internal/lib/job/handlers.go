package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/go-retail/internal/config"
	"github.com/deppfellow/go-retail/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type alertMailer interface {
	Enabled() bool
	SendLowStockAlert(to string, alert email.LowStockAlert) error
}

// InitHandlers builds the dependencies the task handlers need.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	client := email.NewClient(cfg, logger)
	if !client.Enabled() {
		logger.Warn().Msg("resend api key not set, low stock alerts will be dropped")
	}
	j.mailer = client
}

func (j *JobService) handleLowStockTask(_ context.Context, t *asynq.Task) error {
	var p LowStockPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// Retrying a malformed payload cannot succeed.
		return fmt.Errorf("failed to unmarshal low stock payload: %v: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskLowStock).
		Int64("product_id", p.ProductID).
		Str("to", p.To).
		Logger()

	if j.mailer == nil || !j.mailer.Enabled() {
		log.Warn().Msg("email delivery disabled, dropping low stock alert")
		return nil
	}

	log.Info().Int("stock_quantity", p.StockQuantity).Msg("processing low stock alert")

	err := j.mailer.SendLowStockAlert(p.To, email.LowStockAlert{
		ProductID:     p.ProductID,
		ProductName:   p.ProductName,
		StockQuantity: p.StockQuantity,
		Threshold:     p.Threshold,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to send low stock alert")
		return err
	}

	log.Info().Msg("sent low stock alert")
	return nil
}
