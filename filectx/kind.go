package filectx

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// Kind classifies the content of a context file. Each kind maps to one
// converter; only KindText has one, the remaining kinds are recognized so the
// dispatch point exists for future converters.
type Kind int

const (
	KindText Kind = iota
	KindPDF
	KindImage
	KindAudio
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPDF:
		return "pdf"
	case KindImage:
		return "image"
	case KindAudio:
		return "audio"
	}
	return "unknown"
}

// DetectKind classifies a file by its extension, falling back to sniffing the
// leading bytes when the extension is unregistered.
func DetectKind(name string, data []byte) Kind {
	if mediaType := mime.TypeByExtension(filepath.Ext(name)); mediaType != "" {
		return kindOfMediaType(mediaType)
	}
	return kindOfMediaType(http.DetectContentType(data))
}

func kindOfMediaType(mediaType string) Kind {
	switch {
	case strings.HasPrefix(mediaType, "application/pdf"):
		return KindPDF
	case strings.HasPrefix(mediaType, "image/"):
		return KindImage
	case strings.HasPrefix(mediaType, "audio/"):
		return KindAudio
	}
	// Everything else is treated as attachable text, matching the single-file
	// contract of "raw bytes reinterpreted as UTF-8".
	return KindText
}
