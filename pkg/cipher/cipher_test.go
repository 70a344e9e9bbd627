package cipher

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestSelfInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, start := range []int{0, 1, 15, 16, 255, 256, 4096} {
		data := make([]byte, 513)
		rng.Read(data)
		round := Decrypt(Decrypt(data, start), start)
		if !bytes.Equal(round, data) {
			t.Errorf("decrypt(decrypt(B, %d), %d) != B", start, start)
		}
	}
}

func TestSameLength(t *testing.T) {
	for _, n := range []int{0, 1, 7, 16, 100} {
		out := Decrypt(make([]byte, n), 0)
		if len(out) != n {
			t.Errorf("len(Decrypt(%d bytes)) = %d", n, len(out))
		}
	}
}

func TestKnownTransform(t *testing.T) {
	// At position 0 the mask is zero, so a zero input byte encrypts to
	// the first key character.
	out := Encrypt([]byte{0}, 0)
	if out[0] != 'I' {
		t.Errorf("Encrypt([0], 0)[0] = %#x, want 'I'", out[0])
	}

	// At position 256 both the key index and the position mask wrap.
	zeros := make([]byte, 300)
	out = Encrypt(zeros, 0)
	if out[256] != 'I' {
		t.Errorf("Encrypt(zeros, 0)[256] = %#x, want 'I'", out[256])
	}
	if out[16] != 'I'^16 {
		t.Errorf("Encrypt(zeros, 0)[16] = %#x, want %#x", out[16], 'I'^16)
	}
}

func TestRoundTripText(t *testing.T) {
	plain := []byte("HELLO\x00WORLD\x00")
	got := Decrypt(Encrypt(plain, 0), 0)
	if !bytes.Equal(got, plain) {
		t.Errorf("round trip = %q, want %q", got, plain)
	}
}

func TestStartCounterShiftsOutput(t *testing.T) {
	// A wrong start counter must not error; it just produces different
	// bytes. This is the failure mode the quality ratio exists to catch.
	plain := []byte("The troll swings his axe")
	a := Encrypt(plain, 0)
	b := Encrypt(plain, 1)
	if bytes.Equal(a, b) {
		t.Error("shifting the start counter left the output unchanged")
	}
	wrong := Decrypt(Encrypt(plain, 0), 1)
	if bytes.Equal(wrong, plain) {
		t.Error("decrypting with the wrong start counter recovered the plaintext")
	}
}

func TestEncryptIsDecrypt(t *testing.T) {
	data := []byte{0x00, 0x7f, 0xff, 0x10}
	if !bytes.Equal(Encrypt(data, 42), Decrypt(data, 42)) {
		t.Error("Encrypt and Decrypt disagree")
	}
}
