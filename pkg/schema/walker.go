package schema

import (
	"fmt"

	"dungeon-lens/pkg/reader"
)

// Metadata holds everything the metadata region declares, plus the offset
// where the encrypted text section begins.
type Metadata struct {
	VersionMajor int16
	VersionMinor int16
	VersionEdit  int16

	MaxScore        int16
	StringBit       int16
	EndgameMaxScore int16

	// SectionCounts is in Layout order, message section excluded.
	SectionCounts []SectionCount

	// MessageBase precedes the message count in the file. The index table
	// is retained for cross-validation but not needed to locate the text:
	// TextStart is simply where the cursor stops.
	MessageBase  int16
	MessageIndex []int16

	TextStart int
}

// SectionCount pairs a section name with its declared element count.
type SectionCount struct {
	Name  string
	Count int16
}

// Version renders the file version the way the original tool prints it,
// e.g. "2.7A". The edit field is a character code; values outside ASCII
// are omitted.
func (m *Metadata) Version() string {
	if m.VersionEdit >= 0 && m.VersionEdit < 128 {
		return fmt.Sprintf("%d.%d%c", m.VersionMajor, m.VersionMinor, byte(m.VersionEdit))
	}
	return fmt.Sprintf("%d.%d", m.VersionMajor, m.VersionMinor)
}

// Walk replays the full metadata layout against the cursor and returns
// the collected metadata. It never fails: a truncated file produces short
// arrays and whatever offset the cursor reached. A count that cannot be
// read (or is negative) walks as zero. Walk does not validate anything —
// a file that does not match the layout silently desynchronizes, and the
// damage shows up later as a low quality ratio on the decrypted text.
func Walk(c *reader.Cursor) *Metadata {
	m := &Metadata{}

	m.VersionMajor, _ = c.ReadInt16BE()
	m.VersionMinor, _ = c.ReadInt16BE()
	m.VersionEdit, _ = c.ReadInt16BE()

	m.MaxScore, _ = c.ReadInt16BE()
	m.StringBit, _ = c.ReadInt16BE()
	m.EndgameMaxScore, _ = c.ReadInt16BE()

	for _, sec := range Layout {
		count, _ := c.ReadInt16BE()
		m.SectionCounts = append(m.SectionCounts, SectionCount{sec.Name, count})
		for _, f := range sec.Fields {
			switch f.Kind {
			case Dense:
				ReadDense(c, count)
			case Sparse:
				ReadSparse(c, count)
			case Flags:
				ReadFlags(c, count)
			}
		}
	}

	// Message section: base value, then count, then the index table.
	m.MessageBase, _ = c.ReadInt16BE()
	mlnt, _ := c.ReadInt16BE()
	m.MessageIndex = ReadDense(c, mlnt)

	m.TextStart = c.Pos()
	return m
}

// ReadDense reads up to count 16-bit integers, stopping early if the
// stream runs out. Negative counts read nothing.
func ReadDense(c *reader.Cursor, count int16) []int16 {
	if count < 0 {
		return nil
	}
	out := make([]int16, 0, count)
	for i := int16(0); i < count; i++ {
		v, ok := c.ReadInt16BE()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// ReadSparse reads (index, value) pairs until the sentinel. The index
// encoding depends on the owning section's declared count: below 255 the
// index is a single unsigned byte with sentinel 255, otherwise a 16-bit
// integer with sentinel -1. The comparison uses the declared count even
// when fewer elements were actually present. Duplicate indices overwrite.
func ReadSparse(c *reader.Cursor, count int16) map[int]int16 {
	out := make(map[int]int16)
	for {
		var index int
		if count < 255 {
			b, ok := c.ReadUint8()
			if !ok || b == 255 {
				break
			}
			index = int(b)
		} else {
			v, ok := c.ReadInt16BE()
			if !ok || v == -1 {
				break
			}
			index = int(v)
		}
		value, ok := c.ReadInt16BE()
		if !ok {
			break
		}
		out[index] = value
	}
	return out
}

// ReadFlags reads up to count single-byte booleans (nonzero is true),
// stopping early if the stream runs out.
func ReadFlags(c *reader.Cursor, count int16) []bool {
	if count < 0 {
		return nil
	}
	out := make([]bool, 0, count)
	for i := int16(0); i < count; i++ {
		b, ok := c.ReadUint8()
		if !ok {
			break
		}
		out = append(out, b != 0)
	}
	return out
}
