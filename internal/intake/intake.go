// Package intake normalizes product photos into inline data URIs. Uploaded
// files and fetched sample images both end up in the same
// data:<mime>;base64,<payload> form so the generation client has a single
// input shape to deal with.
package intake

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"bananastudio/internal/domain"
)

// MaxUploadBytes caps uploaded product photos at 5 MiB.
const MaxUploadBytes = 5 << 20

const fallbackMIME = "image/jpeg"

var dataURIPattern = regexp.MustCompile(`^data:([^;,]+);base64,`)

// SplitDataURI separates a data URI into its MIME type and raw base64
// payload. Strings without a recognizable prefix are treated as bare base64
// JPEG payloads, matching how the provider tolerates them.
func SplitDataURI(uri string) (mime, payload string) {
	if m := dataURIPattern.FindStringSubmatch(uri); m != nil {
		return m[1], uri[len(m[0]):]
	}
	return fallbackMIME, uri
}

// EncodeDataURI builds a data URI from raw bytes.
func EncodeDataURI(mime string, data []byte) string {
	if mime == "" {
		mime = fallbackMIME
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}

// IsDataURI reports whether the string carries an inline base64 payload.
func IsDataURI(uri string) bool {
	return dataURIPattern.MatchString(uri)
}

// ReadImage consumes an uploaded image stream into a data URI, enforcing the
// size cap. declaredMIME comes from the upload part header; when it is absent
// or generic the type is sniffed from the content instead.
func ReadImage(r io.Reader, declaredMIME string, maxBytes int64) (string, error) {
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("intake: read upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return "", domain.ErrImageTooLarge
	}
	if len(data) == 0 {
		return "", fmt.Errorf("intake: empty upload")
	}
	return EncodeDataURI(normalizeMIME(declaredMIME, data), data), nil
}

func normalizeMIME(declared string, data []byte) string {
	declared = strings.TrimSpace(strings.ToLower(declared))
	if declared == "" || declared == "application/octet-stream" {
		return http.DetectContentType(data)
	}
	if idx := strings.Index(declared, ";"); idx >= 0 {
		declared = declared[:idx]
	}
	return declared
}
