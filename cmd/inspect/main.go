// One-off inspection tool for dtextc.dat candidates: hex-dumps the start
// of the file, prints the header fields, and reports where the layout
// walk lands plus the decryption quality at that offset. Useful when a
// file variant does not decode cleanly with the main tool.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"dungeon-lens/pkg/cipher"
	"dungeon-lens/pkg/reader"
	"dungeon-lens/pkg/schema"
	"dungeon-lens/pkg/segmenter"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: inspect <dtextc.dat>")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Println("Open error:", err)
		os.Exit(1)
	}

	// Hex dump the first 80 bytes
	n := 80
	if n > len(data) {
		n = len(data)
	}
	fmt.Printf("First %d bytes of %s:\n", n, os.Args[1])
	for i := 0; i < n; i += 16 {
		end := i + 16
		if end > n {
			end = n
		}
		fmt.Printf("  %04x: %s\n", i, hex.EncodeToString(data[i:end]))
	}
	fmt.Println()

	meta := schema.Walk(reader.NewCursor(data))
	fmt.Printf("Version: %s\n", meta.Version())
	fmt.Printf("Max Score: %d, String Bit: 0x%04x, Endgame Max: %d\n",
		meta.MaxScore, uint16(meta.StringBit), meta.EndgameMaxScore)
	for _, sc := range meta.SectionCounts {
		fmt.Printf("  %-12s %d\n", sc.Name, sc.Count)
	}
	fmt.Printf("  %-12s %d (base=%d)\n", "messages", len(meta.MessageIndex), meta.MessageBase)
	fmt.Printf("Walk stops at offset %d of %d\n\n", meta.TextStart, len(data))

	// Quality at the walked offset, then at nearby offsets in case the
	// layout is off by a field or two for this variant.
	for _, delta := range []int{0, -4, -2, 2, 4} {
		off := meta.TextStart + delta
		if off < 0 || off > len(data) {
			continue
		}
		q := segmenter.Quality(cipher.Decrypt(data[off:], 0))
		marker := ""
		if delta == 0 {
			marker = "  <- walked offset"
		}
		fmt.Printf("offset %6d: quality %.3f%s\n", off, q, marker)
	}
}
