package reader

// Cursor provides sequential access over an in-memory byte buffer.
// The dtextc.dat format is read strictly front to back through a single
// shared cursor; running off the end of the buffer is a normal
// termination condition (truncated files are tolerated everywhere), so
// reads report exhaustion with an ok bool rather than an error.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps data without copying it. The caller keeps ownership.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// ReadInt16BE reads a signed 16-bit big-endian integer. Returns ok=false
// without advancing if fewer than 2 bytes remain.
func (c *Cursor) ReadInt16BE() (int16, bool) {
	if c.pos+2 > len(c.data) {
		return 0, false
	}
	v := int16(c.data[c.pos])<<8 | int16(c.data[c.pos+1])
	c.pos += 2
	return v, true
}

// ReadUint8 reads a single byte. Returns ok=false if the buffer is exhausted.
func (c *Cursor) ReadUint8() (byte, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	b := c.data[c.pos]
	c.pos++
	return b, true
}

// SeekTo repositions the cursor to an absolute offset, clamped to [0, len].
func (c *Cursor) SeekTo(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(c.data) {
		offset = len(c.data)
	}
	c.pos = offset
}

// Pos returns the current byte offset from the start of the buffer.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the unread tail of the buffer as a subslice (no copy)
// and advances the cursor to the end.
func (c *Cursor) Remaining() []byte {
	tail := c.data[c.pos:]
	c.pos = len(c.data)
	return tail
}

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.data)
}
