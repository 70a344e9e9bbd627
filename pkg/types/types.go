package types

// DecodeOutput is the complete JSON output for one decoded data file.
type DecodeOutput struct {
	OK              bool       `json:"ok"`
	SourceFile      string     `json:"source_file,omitempty"`
	Version         string     `json:"version,omitempty"`
	MaxScore        int16      `json:"max_score"`
	StringBit       int16      `json:"string_bit"`
	EndgameMaxScore int16      `json:"endgame_max_score"`
	Sections        []Section  `json:"sections,omitempty"`
	MessageBase     int16      `json:"message_base"`
	MessageIndexLen int        `json:"message_index_len"`
	TextOffset      int        `json:"text_offset"`
	TextBytes       int        `json:"text_bytes"`
	Quality         float64    `json:"quality"`
	MessageCount    int        `json:"message_count"`
	Messages        []Message  `json:"messages"`
	Error           *ErrorInfo `json:"error,omitempty"`
}

// Section reports the declared element count of one metadata section.
type Section struct {
	Name  string `json:"name"`
	Count int16  `json:"count"`
}

// Message is one extracted string with its byte span in the decrypted
// text section (end exclusive).
type Message struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// ErrorInfo represents an error response.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
