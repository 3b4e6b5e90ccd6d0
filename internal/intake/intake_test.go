package intake

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bananastudio/internal/domain"
)

func TestSplitDataURI(t *testing.T) {
	tests := []struct {
		name        string
		uri         string
		wantMIME    string
		wantPayload string
	}{
		{
			name:        "png data uri",
			uri:         "data:image/png;base64,aGVsbG8=",
			wantMIME:    "image/png",
			wantPayload: "aGVsbG8=",
		},
		{
			name:        "webp data uri",
			uri:         "data:image/webp;base64,Zm9v",
			wantMIME:    "image/webp",
			wantPayload: "Zm9v",
		},
		{
			name:        "bare base64 falls back to jpeg",
			uri:         "aGVsbG8=",
			wantMIME:    "image/jpeg",
			wantPayload: "aGVsbG8=",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mime, payload := SplitDataURI(tc.uri)
			if mime != tc.wantMIME {
				t.Fatalf("mime = %q, want %q", mime, tc.wantMIME)
			}
			if payload != tc.wantPayload {
				t.Fatalf("payload = %q, want %q", payload, tc.wantPayload)
			}
		})
	}
}

func TestEncodeDataURIRoundTrip(t *testing.T) {
	data := []byte{0x89, 0x50, 0x4e, 0x47, 0x01, 0x02}
	uri := EncodeDataURI("image/png", data)
	if !IsDataURI(uri) {
		t.Fatalf("EncodeDataURI produced non data URI: %q", uri)
	}

	mime, payload := SplitDataURI(uri)
	if mime != "image/png" {
		t.Fatalf("mime = %q, want image/png", mime)
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload not base64: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatalf("round trip mismatch: %v vs %v", decoded, data)
	}
}

func TestEncodeDataURIEmptyMIME(t *testing.T) {
	uri := EncodeDataURI("", []byte("x"))
	if !strings.HasPrefix(uri, "data:image/jpeg;base64,") {
		t.Fatalf("uri = %q, want image/jpeg fallback", uri)
	}
}

func TestReadImageWithinCap(t *testing.T) {
	data := bytes.Repeat([]byte{0xab}, 2<<20)
	uri, err := ReadImage(bytes.NewReader(data), "image/png", MaxUploadBytes)
	if err != nil {
		t.Fatalf("ReadImage: %v", err)
	}
	mime, payload := SplitDataURI(uri)
	if mime != "image/png" {
		t.Fatalf("mime = %q, want image/png", mime)
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload not base64: %v", err)
	}
	if len(decoded) != len(data) {
		t.Fatalf("decoded length = %d, want %d", len(decoded), len(data))
	}
}

func TestReadImageOverCap(t *testing.T) {
	data := bytes.Repeat([]byte{0xab}, 6<<20)
	_, err := ReadImage(bytes.NewReader(data), "image/png", MaxUploadBytes)
	if !errors.Is(err, domain.ErrImageTooLarge) {
		t.Fatalf("err = %v, want ErrImageTooLarge", err)
	}
}

func TestReadImageEmpty(t *testing.T) {
	if _, err := ReadImage(bytes.NewReader(nil), "image/png", MaxUploadBytes); err == nil {
		t.Fatalf("expected error for empty upload")
	}
}

func TestReadImageSniffsGenericMIME(t *testing.T) {
	// Real PNG magic so DetectContentType resolves image/png.
	png := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, bytes.Repeat([]byte{0}, 64)...)

	tests := []struct {
		name     string
		declared string
		want     string
	}{
		{"empty declared", "", "image/png"},
		{"octet stream", "application/octet-stream", "image/png"},
		{"declared wins", "image/webp", "image/webp"},
		{"parameters stripped", "image/jpeg; charset=binary", "image/jpeg"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uri, err := ReadImage(bytes.NewReader(png), tc.declared, MaxUploadBytes)
			if err != nil {
				t.Fatalf("ReadImage: %v", err)
			}
			if mime, _ := SplitDataURI(uri); mime != tc.want {
				t.Fatalf("mime = %q, want %q", mime, tc.want)
			}
		})
	}
}

func TestFetchDataURI(t *testing.T) {
	body := bytes.Repeat([]byte{0xcd}, 512)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client(), MaxUploadBytes)
	uri, err := f.FetchDataURI(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchDataURI: %v", err)
	}
	mime, payload := SplitDataURI(uri)
	if mime != "image/jpeg" {
		t.Fatalf("mime = %q, want image/jpeg", mime)
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload not base64: %v", err)
	}
	if !bytes.Equal(decoded, body) {
		t.Fatalf("fetched bytes mismatch")
	}
}

func TestFetchDataURIUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client(), MaxUploadBytes)
	if _, err := f.FetchDataURI(context.Background(), srv.URL); err == nil {
		t.Fatalf("expected error for upstream 404")
	}
}

func TestFetchDataURIOverCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(bytes.Repeat([]byte{0xee}, 2048))
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client(), 1024)
	_, err := f.FetchDataURI(context.Background(), srv.URL)
	if !errors.Is(err, domain.ErrImageTooLarge) {
		t.Fatalf("err = %v, want ErrImageTooLarge", err)
	}
}
