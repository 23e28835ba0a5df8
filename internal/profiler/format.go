package profiler

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatEuros renders amount with English digit grouping, e.g. €27,350.
func FormatEuros(amount int) string {
	return message.NewPrinter(language.English).Sprintf("€%d", amount)
}
