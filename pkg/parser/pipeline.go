// Package parser drives the full decode pipeline: walk the metadata
// layout to locate the text section, decrypt it, and segment it into
// messages.
package parser

import (
	"dungeon-lens/pkg/cipher"
	"dungeon-lens/pkg/reader"
	"dungeon-lens/pkg/schema"
	"dungeon-lens/pkg/segmenter"
	"dungeon-lens/pkg/types"
)

// Result bundles the walked metadata with the decoded messages.
type Result struct {
	Meta     *schema.Metadata
	Messages []types.Message
	Quality  float64
	TextLen  int
}

// Decode runs the pipeline over a complete dtextc.dat image. It is total:
// a file that does not match the layout desynchronizes silently and comes
// back with a low quality ratio rather than an error. The input buffer is
// not modified; decryption produces a fresh buffer.
func Decode(data []byte) *Result {
	cur := reader.NewCursor(data)
	meta := schema.Walk(cur)

	// The walk leaves the cursor at the text section by construction; the
	// explicit seek re-anchors it in case the cursor was reused.
	cur.SeekTo(meta.TextStart)
	encrypted := cur.Remaining()

	// The cipher's position counter is relative to the text section, so
	// it starts at 0 here, not at the file offset.
	decrypted := cipher.Decrypt(encrypted, 0)

	messages, quality := segmenter.Segment(decrypted)

	return &Result{
		Meta:     meta,
		Messages: messages,
		Quality:  quality,
		TextLen:  len(decrypted),
	}
}

// Output shapes a Result into the JSON output envelope.
func Output(r *Result, sourceFile string) *types.DecodeOutput {
	out := &types.DecodeOutput{
		OK:              true,
		SourceFile:      sourceFile,
		Version:         r.Meta.Version(),
		MaxScore:        r.Meta.MaxScore,
		StringBit:       r.Meta.StringBit,
		EndgameMaxScore: r.Meta.EndgameMaxScore,
		MessageBase:     r.Meta.MessageBase,
		MessageIndexLen: len(r.Meta.MessageIndex),
		TextOffset:      r.Meta.TextStart,
		TextBytes:       r.TextLen,
		Quality:         r.Quality,
		MessageCount:    len(r.Messages),
		Messages:        r.Messages,
	}
	for _, sc := range r.Meta.SectionCounts {
		out.Sections = append(out.Sections, types.Section{Name: sc.Name, Count: sc.Count})
	}
	return out
}
