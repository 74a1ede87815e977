package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskLowStock is the task type for low-stock alert emails.
	TaskLowStock = "stock:low"

	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// LowStockPayload is the JSON payload of a TaskLowStock task.
type LowStockPayload struct {
	To            string `json:"to"`
	ProductID     int64  `json:"product_id"`
	ProductName   string `json:"product_name"`
	StockQuantity int    `json:"stock_quantity"`
	Threshold     int    `json:"threshold"`
}

// NewLowStockTask builds the task for p. Alerts for the same product and
// stock level are deduplicated for ten minutes.
func NewLowStockTask(p LowStockPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskLowStock,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueCritical),
		asynq.Timeout(30*time.Second),
		asynq.Unique(10*time.Minute),
	), nil
}

// EnqueueLowStockAlert pushes a low-stock alert onto the critical queue.
func (j *JobService) EnqueueLowStockAlert(ctx context.Context, p LowStockPayload) error {
	task, err := NewLowStockTask(p)
	if err != nil {
		return err
	}

	info, err := j.client.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Int64("product_id", p.ProductID).
		Msg("enqueued low stock alert")
	return nil
}
