package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"dungeon-lens/pkg/cipher"
	"dungeon-lens/pkg/parser"
	"dungeon-lens/pkg/types"
)

const defaultOutput = "dungeon_text.txt"

// previewLimit caps how many messages are echoed to the console, and
// previewChars how much of each.
const (
	previewLimit = 5
	previewChars = 200
)

// qualityThreshold separates "decryption worked" from "probably a layout
// mismatch"; below it the tool warns instead of previewing.
const qualityThreshold = 0.8

func main() {
	var jsonOut bool

	flags := pflag.NewFlagSet("dungeon-lens", pflag.ContinueOnError)
	flags.BoolVar(&jsonOut, "json", false, "print the decode result as JSON instead of the text summary")
	flags.BoolP("help", "h", false, "show help")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printUsage(flags)
			return
		}
		printError("INVALID_ARGS", err.Error())
		os.Exit(1)
	}

	args := flags.Args()
	if len(args) < 1 {
		printUsage(flags)
		os.Exit(1)
	}

	inputPath := args[0]
	outputPath := defaultOutput
	if len(args) > 1 {
		outputPath = args[1]
	}

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		printError("FILE_NOT_FOUND", fmt.Sprintf("File not found: %s", inputPath))
		os.Exit(1)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		printError("IO_ERROR", fmt.Sprintf("Failed to read input: %v", err))
		os.Exit(1)
	}

	result := parser.Decode(data)
	output := parser.Output(result, inputPath)

	if jsonOut {
		outputJSON, _ := json.MarshalIndent(output, "", "  ")
		fmt.Println(string(outputJSON))
	} else {
		printSummary(output)
	}

	if err := writeReport(outputPath, output); err != nil {
		printError("IO_ERROR", fmt.Sprintf("Failed to write report: %v", err))
		os.Exit(1)
	}

	if !jsonOut {
		fmt.Printf("\nText saved to: %s\n", outputPath)
		if output.Quality >= qualityThreshold {
			printPreview(output.Messages)
		} else {
			fmt.Println("\nWarning: decryption quality is lower than expected.")
			fmt.Println("The messages may still be partially encoded.")
		}
	}
}

func printSummary(out *types.DecodeOutput) {
	fmt.Printf("Version: %s\n", out.Version)
	fmt.Printf("Max Score: %d, String Bit: 0x%04x, Endgame Max: %d\n",
		out.MaxScore, uint16(out.StringBit), out.EndgameMaxScore)
	for _, sec := range out.Sections {
		fmt.Printf("Read %d %s\n", sec.Count, sec.Name)
	}
	fmt.Printf("Read %d message indices (base=%d)\n", out.MessageIndexLen, out.MessageBase)
	fmt.Printf("Text section at offset %d, %d bytes\n", out.TextOffset, out.TextBytes)
	fmt.Printf("Decryption quality: %.1f%% printable\n", out.Quality*100)
	fmt.Printf("Extracted %d text strings\n", out.MessageCount)
}

func printPreview(messages []types.Message) {
	if len(messages) == 0 {
		return
	}
	fmt.Printf("\nPreview - first %d messages:\n", previewLimit)
	for i, msg := range messages {
		if i >= previewLimit {
			break
		}
		preview := strings.ReplaceAll(msg.Text, "\n", " ")
		if len(preview) > previewChars {
			preview = preview[:previewChars] + "..."
		}
		fmt.Printf("[%d] %s\n", i+1, preview)
	}
}

func writeReport(path string, out *types.DecodeOutput) error {
	var b strings.Builder
	rule := strings.Repeat("=", 70)

	b.WriteString(rule + "\n")
	b.WriteString("DUNGEON TEXT EXTRACTION\n")
	fmt.Fprintf(&b, "From file: %s\n", out.SourceFile)
	fmt.Fprintf(&b, "Decryption: %s positional XOR\n", cipher.Key)
	fmt.Fprintf(&b, "Quality: %.1f%% printable\n", out.Quality*100)
	b.WriteString(rule + "\n\n")

	for i, msg := range out.Messages {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, msg.Text)
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

func printUsage(flags *pflag.FlagSet) {
	fmt.Println("Usage: dungeon-lens [flags] <dtextc.dat> [output.txt]")
	fmt.Println()
	fmt.Println("Decodes the encrypted text section of a Zork/Dungeon dtextc.dat file.")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Print(flags.FlagUsages())
}

func printError(code, message string) {
	type errorOutput struct {
		OK    bool             `json:"ok"`
		Error *types.ErrorInfo `json:"error"`
	}
	errOutput := errorOutput{
		OK: false,
		Error: &types.ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
	errJSON, _ := json.Marshal(errOutput)
	fmt.Println(string(errJSON))
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}
