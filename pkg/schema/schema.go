// Package schema encodes the dtextc.dat binary layout and walks a file
// through it to find where the encrypted text section begins.
//
// The file is a fixed sequence of count-prefixed sections, each a fixed
// ordered list of arrays sharing the section's element count. Three array
// encodings appear:
//
//	dense:  count signed 16-bit big-endian integers, back to back
//	sparse: (index, value) pairs until a sentinel; single-byte index with
//	        sentinel 255 when the section count is below 255, otherwise a
//	        16-bit index with sentinel -1
//	flags:  count single bytes, nonzero meaning true
//
// The section order and per-field encoding below were recovered from the
// original dtextc.dat reader and must be reproduced exactly: one field
// read with the wrong encoding desynchronizes every read after it.
package schema

// FieldKind selects the wire encoding of one section field.
type FieldKind int

const (
	Dense FieldKind = iota
	Sparse
	Flags
)

// Field is one named array within a section.
type Field struct {
	Name string
	Kind FieldKind
}

// Section is a named, count-prefixed group of fields.
type Section struct {
	Name   string
	Fields []Field
}

// Layout is the full metadata layout, in file order. The message index
// section is not listed here: it is the only section with a second
// leading integer (the message base) and is handled by Walk directly.
var Layout = []Section{
	{
		Name: "rooms",
		Fields: []Field{
			{"rdesc1", Dense},
			{"rdesc2", Dense},
			{"rexit", Dense},
			{"ractio", Sparse},
			{"rval", Sparse},
			{"rflag", Dense},
		},
	},
	{
		Name: "exits",
		Fields: []Field{
			{"travel", Dense},
		},
	},
	{
		Name: "objects",
		Fields: []Field{
			{"odesc1", Dense},
			{"odesc2", Dense},
			{"odesco", Sparse},
			{"oactio", Sparse},
			{"oflag1", Dense},
			{"oflag2", Sparse},
			{"ofval", Sparse},
			{"otval", Sparse},
			{"osize", Dense},
			{"ocapac", Sparse},
			{"oroom", Dense},
			{"oadv", Sparse},
			{"ocan", Sparse},
			{"oread", Sparse},
		},
	},
	{
		Name: "room-links",
		Fields: []Field{
			{"oroom2", Dense},
			{"rroom2", Dense},
		},
	},
	{
		Name: "clock-events",
		Fields: []Field{
			{"ctick", Dense},
			{"cactio", Dense},
			{"cflag", Flags},
		},
	},
	{
		Name: "villains",
		Fields: []Field{
			{"villns", Dense},
			{"vprob", Sparse},
			{"vopps", Sparse},
			{"vbest", Dense},
			{"vmelee", Dense},
		},
	},
	{
		Name: "adventurers",
		Fields: []Field{
			{"aroom", Dense},
			{"ascore", Sparse},
			{"avehic", Sparse},
			{"aobj", Dense},
			{"aactio", Dense},
			{"astren", Dense},
			{"aflag", Sparse},
		},
	},
}
