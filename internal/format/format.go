// Package format renders values the way the simulator displays them to
// Brazilian users.
package format

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale is the locale used for every user facing number.
var Locale = language.BrazilianPortuguese

var printer = message.NewPrinter(Locale)

// Reais formats an amount with "." as thousands separator and "," as
// decimal separator, always with two decimal places, e.g. 1.234,56.
func Reais(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	integer, fraction, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return sign + b.String() + "," + fraction
}

// Percent formats a fraction (0.125) as a percentage with one decimal place (12,5%).
func Percent(v float64) string {
	return printer.Sprintf("%.1f%%", v*100)
}

// Index formats the composite index with two decimal places.
func Index(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Wrap splits text into lines of at most width characters, breaking on
// whitespace and after hyphens inside words. Words longer than width are split.
func Wrap(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}

	var lines []string
	current := ""

	for _, word := range strings.Fields(text) {
		for i, chunk := range hyphenChunks(word) {
			sep := " "
			if i > 0 || current == "" {
				sep = ""
			}

			if current != "" && utf8.RuneCountInString(current)+len(sep)+utf8.RuneCountInString(chunk) <= width {
				current += sep + chunk
				continue
			}

			if current != "" {
				lines = append(lines, current)
			}

			for utf8.RuneCountInString(chunk) > width {
				runes := []rune(chunk)
				lines = append(lines, string(runes[:width]))
				chunk = string(runes[width:])
			}
			current = chunk
		}
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}

// hyphenChunks splits a word after every hyphen that joins two letters.
func hyphenChunks(word string) []string {
	runes := []rune(word)

	var chunks []string
	start := 0
	for i := 1; i < len(runes)-1; i++ {
		if runes[i] == '-' && unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1]) {
			chunks = append(chunks, string(runes[start:i+1]))
			start = i + 1
		}
	}

	return append(chunks, string(runes[start:]))
}
