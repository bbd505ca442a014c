package base45

// EncodedLen returns the length in symbols of the encoding of n bytes.
func EncodedLen(n int) int {
	return n/2*3 + n%2*2
}

// AppendEncode appends the Base45 encoding of src to dst and returns the
// extended buffer.
func AppendEncode(dst, src []byte) []byte {
	if n := EncodedLen(len(src)); cap(dst)-len(dst) < n {
		grown := make([]byte, len(dst), len(dst)+n)
		copy(grown, dst)
		dst = grown
	}

	for len(src) >= 2 {
		val := int(src[0])<<8 | int(src[1])
		e := val / base2
		val -= e * base2
		d := val / Base
		c := val - d*Base
		dst = append(dst, Alphabet[c], Alphabet[d], Alphabet[e])
		src = src[2:]
	}

	// Trailing byte: two digits are always enough (255 < 45*45).
	if len(src) == 1 {
		val := int(src[0])
		dst = append(dst, Alphabet[val%Base], Alphabet[val/Base])
	}

	return dst
}

// EncodeBytes returns the Base45 encoding of src.
// Empty input yields the empty string.
func EncodeBytes(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	return string(AppendEncode(make([]byte, 0, EncodedLen(len(src))), src))
}

// Encode returns the Base45 encoding of the UTF-8 bytes of s.
func Encode(s string) string {
	return EncodeBytes([]byte(s))
}
