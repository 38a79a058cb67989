package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Vietnamese)

// FormatVND renders a whole-VND amount with Vietnamese digit grouping and
// the trailing đ sign, e.g. 1234567 -> "1.234.567đ".
func FormatVND(amount int64) string {
	return printer.Sprintf("%d", amount) + "đ"
}
