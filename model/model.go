package model

// Message roles and content block types of the chat-completion wire format.
const (
	RoleUser        = "user"
	ContentTypeText = "text"
)

// EncodingUTF8 is the fixed encoding literal attached to every file context
// record. File bytes are reinterpreted as text without transcoding.
const EncodingUTF8 = "utf-8"

// ChatRequest is the JSON body posted to the chat-completions endpoint.
// MaxTokens, Temperature, TopP and Stream are fixed per invocation; Stream
// serializes even when false.
type ChatRequest struct {
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	TopP        float64   `json:"top_p"`
	Stream      bool      `json:"stream"`
	Model       string    `json:"model"`
}

// Message is a single chat message. Content is either a bare prompt string or
// a []ContentBlock when file or directory context rides along.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ContentBlock is one element of a multi-part message content array.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// FileContext is one file gathered for directory context. Path is relative to
// the directory root the walk started from.
type FileContext struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// CatalogModel describes one entry of the model catalog. Fields the API does
// not send stay zero valued.
type CatalogModel struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Publisher     string   `json:"publisher"`
	Summary       string   `json:"summary,omitempty"`
	RateLimitTier string   `json:"rate_limit_tier,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}
