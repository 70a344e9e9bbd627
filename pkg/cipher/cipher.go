// Package cipher implements the positional XOR cipher protecting the text
// section of dtextc.dat. Found in the original dsub.c:
//
//	i ^= zkey[x & 0xf] ^ (x & 0xff);
//
// Each byte is XORed with BOTH a repeating 16-character key and the low 8
// bits of its position counter. The counter is relative to the start of
// the text section, not the whole file.
package cipher

// Key is the fixed 16-byte key from dsub.c.
const Key = "IanLanceTaylorJr"

// Decrypt applies the positional XOR transform to data, with the position
// counter starting at start (0 for a buffer beginning at the text
// section). Output has the same length as the input; the input is not
// modified. Getting start wrong does not fail — it shifts every byte's
// key/mask pair and produces garbage, which is why callers check the
// segmenter's quality ratio afterwards.
func Decrypt(data []byte, start int) []byte {
	out := make([]byte, len(data))
	x := start
	for i, b := range data {
		out[i] = b ^ Key[x&0xf] ^ byte(x&0xff)
		x++
	}
	return out
}

// Encrypt is the same transform as Decrypt (XOR is self-inverse).
func Encrypt(data []byte, start int) []byte {
	return Decrypt(data, start)
}
