package email

// PreviewData holds sample values for rendering each template locally.
//
//	PreviewData["low_stock"]["ProductName"] == "Arabica Beans 1kg"
var PreviewData = map[Template]map[string]string{
	TemplateLowStock: {
		"ProductID":     "42",
		"ProductName":   "Arabica Beans 1kg",
		"StockQuantity": "3",
		"Threshold":     "5",
	},
}
