package view

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var yenPrinter = message.NewPrinter(language.Japanese)

// FormatAmount renders a minor-unit amount with thousands grouping.
func FormatAmount(v int64) string {
	return yenPrinter.Sprintf("¥%d", v)
}

// FormatRatio renders an optional ratio as a percentage, or a dash when
// the ratio is absent.
func FormatRatio(r *float64) string {
	if r == nil {
		return "—"
	}

	return fmt.Sprintf("%.1f%%", *r*100)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
