// Package base45 implements the Base45 binary-to-text encoding.
//
// Base45 maps arbitrary bytes onto a 45-character alphabet made of the
// digits, the uppercase letters and nine punctuation symbols:
//
//	0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:
//
// This is the character set of the QR code alphanumeric mode, so encoded
// payloads pack densely into QR codes and survive channels that only carry
// a small printable character set.
//
// # Groups
//
// Input bytes are taken two at a time. A pair {a, b} is read as the
// big-endian value n = a*256 + b and written as three base-45 digits,
// least significant first:
//
//	n = c + d*45 + e*45*45    =>    "cde"
//
// A trailing single byte is written as two digits. Encoded output therefore
// has 3*(len/2) + 2*(len%2) symbols.
//
// # Decoding
//
// Decoding reverses the grouping: three symbols give two bytes, and a
// shorter trailing group gives one byte, or two if its value exceeds 255.
// Decoding is strict. It rejects:
//   - symbols outside the alphabet
//   - groups whose value exceeds 16 bits
//   - (Decode only) output that is not valid UTF-8
//
// Every failure is a *DecodingError carrying the complete input. Nothing is
// returned on failure.
//
// # Example
//
//	s := base45.Encode("Hello!!")   // "%69 VD92EX0"
//	t, err := base45.Decode(s)      // "Hello!!", nil
//
// All functions are pure and safe for concurrent use.
package base45
