package reader

import "testing"

func TestReadInt16BE(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want int16
	}{
		{"zero", []byte{0x00, 0x00}, 0},
		{"positive", []byte{0x01, 0x02}, 258},
		{"max", []byte{0x7f, 0xff}, 32767},
		{"minus one", []byte{0xff, 0xff}, -1},
		{"min", []byte{0x80, 0x00}, -32768},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.data)
			got, ok := c.ReadInt16BE()
			if !ok {
				t.Fatal("ReadInt16BE reported exhaustion on a 2-byte buffer")
			}
			if got != tt.want {
				t.Errorf("ReadInt16BE() = %d, want %d", got, tt.want)
			}
			if c.Pos() != 2 {
				t.Errorf("Pos() = %d after one int16, want 2", c.Pos())
			}
		})
	}
}

func TestReadInt16BEExhausted(t *testing.T) {
	// One byte is not enough for an int16; the cursor must not advance.
	c := NewCursor([]byte{0x42})
	if _, ok := c.ReadInt16BE(); ok {
		t.Error("ReadInt16BE succeeded with only 1 byte remaining")
	}
	if c.Pos() != 0 {
		t.Errorf("Pos() = %d after failed read, want 0", c.Pos())
	}
}

func TestReadUint8(t *testing.T) {
	c := NewCursor([]byte{0xab, 0x00})
	b, ok := c.ReadUint8()
	if !ok || b != 0xab {
		t.Errorf("ReadUint8() = %#x, %v, want 0xab, true", b, ok)
	}
	b, ok = c.ReadUint8()
	if !ok || b != 0x00 {
		t.Errorf("ReadUint8() = %#x, %v, want 0x00, true", b, ok)
	}
	if _, ok := c.ReadUint8(); ok {
		t.Error("ReadUint8 succeeded past the end of the buffer")
	}
}

func TestSeekAndPos(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5})
	c.SeekTo(3)
	if c.Pos() != 3 {
		t.Errorf("Pos() = %d after SeekTo(3), want 3", c.Pos())
	}
	b, _ := c.ReadUint8()
	if b != 4 {
		t.Errorf("ReadUint8() after SeekTo(3) = %d, want 4", b)
	}

	// Seek clamps to buffer bounds.
	c.SeekTo(-1)
	if c.Pos() != 0 {
		t.Errorf("Pos() = %d after SeekTo(-1), want 0", c.Pos())
	}
	c.SeekTo(99)
	if c.Pos() != 5 {
		t.Errorf("Pos() = %d after SeekTo(99), want 5", c.Pos())
	}
}

func TestRemaining(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4})
	c.SeekTo(2)
	tail := c.Remaining()
	if len(tail) != 2 || tail[0] != 3 || tail[1] != 4 {
		t.Errorf("Remaining() = %v, want [3 4]", tail)
	}
	if c.Pos() != 4 {
		t.Errorf("Pos() = %d after Remaining, want 4", c.Pos())
	}
	if len(c.Remaining()) != 0 {
		t.Error("second Remaining() call returned bytes")
	}
}
