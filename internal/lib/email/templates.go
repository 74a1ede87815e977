package email

import "embed"

// Template names an HTML file under templates/emails.
type Template string

const (
	// TemplateLowStock corresponds to templates/emails/low_stock.html
	TemplateLowStock Template = "low_stock"
)

//go:embed templates/emails/*.html
var templates embed.FS
