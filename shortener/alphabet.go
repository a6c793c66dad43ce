package shortener

import "fmt"

// Alphabet for short codes. Visually ambiguous characters (0, O, I, l)
// are excluded; the order is significant because the characters double as
// digit symbols for the sequence encoding.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz123456789"

const base = int64(len(alphabet))

var charIndex = func() map[byte]int64 {
	m := make(map[byte]int64, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = int64(i)
	}
	return m
}()

// Encode converts a non-negative integer to its shortest base-58
// representation, most significant digit first. Zero encodes as the
// single first character of the alphabet.
func Encode(num int64) string {
	if num == 0 {
		return string(alphabet[0])
	}

	buf := make([]byte, 0, 11)
	for num > 0 {
		buf = append(buf, alphabet[num%base])
		num /= base
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// Decode is the exact inverse of Encode. A character outside the alphabet
// fails with an invalid-code-format error.
func Decode(code string) (int64, error) {
	if code == "" {
		return 0, NewError(KindInvalidCodeFormat, "short code is empty")
	}

	var result int64
	for i := 0; i < len(code); i++ {
		value, ok := charIndex[code[i]]
		if !ok {
			return 0, NewError(KindInvalidCodeFormat,
				fmt.Sprintf("invalid character %q in short code", code[i]))
		}
		result = result*base + value
	}

	return result, nil
}
