package base45

// Alphabet lists the Base45 symbols in digit order.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// Base is the radix of the encoding.
const Base = len(Alphabet)

const (
	base2 = Base * Base // 2025

	invalidSymbol = 0xFF
)

// decodeMap maps a byte to its digit value, or invalidSymbol.
var decodeMap [256]byte

func init() {
	for i := range decodeMap {
		decodeMap[i] = invalidSymbol
	}
	for i := 0; i < len(Alphabet); i++ {
		if decodeMap[Alphabet[i]] != invalidSymbol {
			panic("base45: alphabet contains repeating symbol")
		}
		decodeMap[Alphabet[i]] = byte(i)
	}
}

// SymbolAt returns the symbol for digit value i. It panics if i is not in
// [0, Base).
func SymbolAt(i int) byte {
	return Alphabet[i]
}

// ValueOf returns the digit value of symbol c.
// The second result is false if c is not in the alphabet.
func ValueOf(c byte) (int, bool) {
	v := decodeMap[c]
	if v == invalidSymbol {
		return 0, false
	}
	return int(v), true
}
