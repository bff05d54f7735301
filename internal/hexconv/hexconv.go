package hexconv

// Halfbyte maps a hexadecimal digit to its value. Entries of non-digit
// characters exceed 0x0f, so a pair of halves may be validated at once
// via a|b > 0x0f.
var Halfbyte = [256]byte{}

func init() {
	for i := range Halfbyte {
		Halfbyte[i] = 0xff
	}

	for c := byte('0'); c <= '9'; c++ {
		Halfbyte[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		Halfbyte[c] = c - 'a' + 0xa
	}

	for c := byte('A'); c <= 'F'; c++ {
		Halfbyte[c] = c - 'A' + 0xA
	}
}
