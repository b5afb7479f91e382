package payment

import "strings"

// FormatCardNumber groups the digits of a card number into 4-digit blocks for
// display, capped at 16 digits. Non-digits in the input are dropped.
func FormatCardNumber(raw string) string {
	digits := digitsOnly(raw, 16)
	var blocks []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		blocks = append(blocks, digits[i:end])
	}
	return strings.Join(blocks, " ")
}

// FormatExpiry inserts the month/year separator after the 2nd digit, capped
// at 4 digits total.
func FormatExpiry(raw string) string {
	digits := digitsOnly(raw, 4)
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

func digitsOnly(raw string, max int) string {
	var b strings.Builder
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == max {
			break
		}
	}
	return b.String()
}
