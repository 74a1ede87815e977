package email

import (
	"fmt"
	"strconv"
)

// LowStockAlert describes a product whose stock fell to or below the threshold.
type LowStockAlert struct {
	ProductID     int64
	ProductName   string
	StockQuantity int
	Threshold     int
}

// SendLowStockAlert mails the inventory contact about a product running low.
func (c *Client) SendLowStockAlert(to string, alert LowStockAlert) error {
	data := map[string]string{
		"ProductID":     strconv.FormatInt(alert.ProductID, 10),
		"ProductName":   alert.ProductName,
		"StockQuantity": strconv.Itoa(alert.StockQuantity),
		"Threshold":     strconv.Itoa(alert.Threshold),
	}

	return c.SendEmail(
		to,
		fmt.Sprintf("Low stock: %s", alert.ProductName),
		TemplateLowStock,
		data,
	)
}
