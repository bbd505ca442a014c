package base45

import "unicode/utf8"

const maxTerm = 0xFFFF

// DecodedLen returns the maximum number of bytes produced by decoding n
// symbols. It is exact when n is a multiple of 3.
func DecodedLen(n int) int {
	return n/3*2 + n%3
}

// AppendDecode appends the bytes decoded from s to dst and returns the
// extended buffer. On failure dst is returned at its original length along
// with a *DecodingError.
func AppendDecode(dst []byte, s string) ([]byte, error) {
	n0 := len(dst)
	for i := 0; i < len(s); i += 3 {
		end := min(i+3, len(s))
		val, err := groupValue(s, i, end)
		if err != nil {
			return dst[:n0], err
		}
		// A full group always stands for two bytes; a short one drops a
		// zero high byte.
		if end-i == 3 || val > 0xFF {
			dst = append(dst, byte(val>>8), byte(val))
		} else {
			dst = append(dst, byte(val))
		}
	}
	return dst, nil
}

// groupValue evaluates s[start:end] as base-45 digits, least significant
// first. The result must fit in 16 bits.
func groupValue(s string, start, end int) (int, error) {
	val, weight := 0, 1
	for i := start; i < end; i++ {
		d := decodeMap[s[i]]
		if d == invalidSymbol {
			return 0, decodingError(KindInvalidSymbol, s, i)
		}
		// Each term must fit in 16 bits on its own.
		term := int(d) * weight
		if term > maxTerm {
			return 0, decodingError(KindOverflow, s, i)
		}
		val += term
		weight *= Base
	}
	if val > maxTerm {
		return 0, decodingError(KindOverflow, s, start)
	}
	return val, nil
}

// DecodeToBytes decodes s into raw bytes.
// The empty string decodes to an empty, non-nil slice.
func DecodeToBytes(s string) ([]byte, error) {
	out, err := AppendDecode(make([]byte, 0, DecodedLen(len(s))), s)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Decode decodes s and returns the result as a string. The decoded bytes
// must be valid UTF-8.
func Decode(s string) (string, error) {
	b, err := DecodeToBytes(s)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", decodingError(KindInvalidUTF8, s, -1)
	}
	return string(b), nil
}

// Valid reports whether s is well-formed Base45, i.e. whether DecodeToBytes
// would succeed.
func Valid(s string) bool {
	for i := 0; i < len(s); i += 3 {
		if _, err := groupValue(s, i, min(i+3, len(s))); err != nil {
			return false
		}
	}
	return true
}
