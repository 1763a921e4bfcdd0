package datepicker

// maxDigits is the digit count of a complete DD.MM.YYYY value.
const maxDigits = 8

// Mask normalizes raw keyboard input into a DD.MM.YYYY prefix: non-digits are
// dropped, digits past the eighth are discarded, and dots are inserted once
// the day (2 digits) and the month (4 digits) are complete.
func Mask(raw string) string {
	digits := make([]byte, 0, maxDigits)
	for i := 0; i < len(raw) && len(digits) < maxDigits; i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}

	switch {
	case len(digits) <= 2:
		return string(digits)
	case len(digits) <= 4:
		return string(digits[:2]) + "." + string(digits[2:])
	default:
		return string(digits[:2]) + "." + string(digits[2:4]) + "." + string(digits[4:])
	}
}
