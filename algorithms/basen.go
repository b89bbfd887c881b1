package algorithms

import "fmt"

// baseDigits covers bases up to 36; digits above 9 render as lowercase
// letters.
const baseDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

// ToBaseN renders a non-negative integer in the given base by repeatedly
// taking number mod base and integer-dividing until the number reaches 0.
// ToBaseN(0, b) is "0" for any valid base. Bases 2–36 are supported;
// anything else is ErrBadBase, and a negative number is ErrNegativeNumber.
//
// Complexity: O(log_base(number)).
func ToBaseN(number, base int) (string, error) {
	if base < 2 || base > len(baseDigits) {
		return "", fmt.Errorf("base %d: %w", base, ErrBadBase)
	}
	if number < 0 {
		return "", fmt.Errorf("number %d: %w", number, ErrNegativeNumber)
	}
	if number == 0 {
		return "0", nil
	}

	var buf []byte
	for number > 0 {
		buf = append(buf, baseDigits[number%base])
		number /= base
	}
	// Digits were produced least-significant first.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf), nil
}
