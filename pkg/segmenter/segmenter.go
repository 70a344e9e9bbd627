// Package segmenter carves decrypted text-section bytes into candidate
// message strings. There is no length table to trust (the message index
// is not reliable across file variants), so two independent heuristics
// are run and the one producing more candidates wins. A printable-byte
// quality ratio over the whole buffer doubles as the signal that
// decryption used the right offset.
package segmenter

import (
	"unicode"

	"dungeon-lens/pkg/types"
)

// recordSize is the stride of the fixed-record extraction strategy; the
// original format stores messages in 8-byte records.
const recordSize = 8

// Segment extracts message candidates from decrypted bytes and returns
// them with the overall quality ratio. The fixed-stride result is used
// only when it yields strictly more candidates than the continuous-run
// scan; ties go to the continuous scan, which respects real message
// boundaries instead of record alignment.
func Segment(data []byte) ([]types.Message, float64) {
	quality := Quality(data)

	stride := fixedStride(data)
	runs := continuousRuns(data)

	if len(stride) > len(runs) {
		return stride, quality
	}
	return runs, quality
}

// Quality returns the fraction of bytes that look like plausible text:
// printable ASCII, tab, newline, carriage return, or NUL terminators.
// Empty input scores 0. A well-decrypted text section scores near 1; a
// wrong cipher offset scores near the random baseline.
func Quality(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	n := 0
	for _, b := range data {
		if allowedByte(b) {
			n++
		}
	}
	return float64(n) / float64(len(data))
}

func allowedByte(b byte) bool {
	return (b >= 32 && b <= 126) || b == 9 || b == 10 || b == 13 || b == 0
}

// printableByte reports whether b can appear inside a message run:
// printable ASCII or tab/newline/carriage return. NUL is excluded — it
// terminates runs.
func printableByte(b byte) bool {
	return (b >= 32 && b <= 126) || b == 9 || b == 10 || b == 13
}

// fixedStride partitions the buffer into consecutive 8-byte records,
// truncates each at its first NUL, and keeps any record containing at
// least one printable character.
func fixedStride(data []byte) []types.Message {
	var out []types.Message
	for i := 0; i < len(data); i += recordSize {
		end := i + recordSize
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]
		for j, b := range chunk {
			if b == 0 {
				chunk = chunk[:j]
				break
			}
		}
		if len(chunk) == 0 {
			continue
		}
		text := decodeReplace(chunk)
		if hasPrintable(text) {
			out = append(out, types.Message{Text: text, Start: i, End: i + len(chunk)})
		}
	}
	return out
}

// continuousRuns scans byte by byte, accumulating printable runs. A NUL
// ends the run, which is kept when longer than 2 bytes and at least 70%
// printable. Any other non-printable byte also ends the run, which is
// then kept unconditionally once longer than 2 bytes — the original
// extractor applies the ratio gate only on the NUL path, and that
// asymmetry is preserved here. The run resets after every flush.
func continuousRuns(data []byte) []types.Message {
	var out []types.Message
	var run []byte
	runStart := 0

	flush := func(end int, gated bool) {
		if len(run) > 2 {
			text := decodeReplace(run)
			if !gated || printableRatio(text) > 0.7 {
				out = append(out, types.Message{Text: text, Start: runStart, End: end})
			}
		}
		run = nil
	}

	for i, b := range data {
		switch {
		case b == 0:
			flush(i, true)
		case printableByte(b):
			if len(run) == 0 {
				runStart = i
			}
			run = append(run, b)
		default:
			flush(i, false)
		}
	}
	// A trailing run with no terminator is dropped, matching the original
	// extractor.
	return out
}

// decodeReplace decodes bytes as ASCII, substituting U+FFFD for anything
// outside the 7-bit range. Decoding never fails.
func decodeReplace(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		if c < 0x80 {
			runes[i] = rune(c)
		} else {
			runes[i] = unicode.ReplacementChar
		}
	}
	return string(runes)
}

func hasPrintable(s string) bool {
	for _, r := range s {
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			return true
		}
	}
	return false
}

func printableRatio(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	n, total := 0, 0
	for _, r := range s {
		total++
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			n++
		}
	}
	return float64(n) / float64(total)
}
