package zip

import (
	stdzip "archive/zip"
	"bytes"
	"io"
	"testing"
)

func readArchive(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := stdzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	out := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read entry %s: %v", f.Name, err)
		}
		out[f.Name] = content
	}
	return out
}

func TestArchiveAssets(t *testing.T) {
	archive := ArchiveAssets([]Asset{
		{Filename: "banana-asset-1.png", MIME: "image/png", Data: []byte("one")},
		{Filename: "banana-asset-2.png", MIME: "image/png", Data: []byte("two")},
	})

	entries := readArchive(t, archive)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if !bytes.Equal(entries["banana-asset-1.png"], []byte("one")) {
		t.Fatalf("entry one content = %q", entries["banana-asset-1.png"])
	}
	if !bytes.Equal(entries["banana-asset-2.png"], []byte("two")) {
		t.Fatalf("entry two content = %q", entries["banana-asset-2.png"])
	}
}

func TestArchiveAssetsSkipsEmpty(t *testing.T) {
	archive := ArchiveAssets([]Asset{
		{Filename: "keep.png", Data: []byte("x")},
		{Filename: "empty.png"},
	})
	entries := readArchive(t, archive)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if _, ok := entries["empty.png"]; ok {
		t.Fatalf("empty entry included")
	}
}

func TestArchiveAssetsDuplicateNames(t *testing.T) {
	archive := ArchiveAssets([]Asset{
		{Filename: "asset.png", Data: []byte("a")},
		{Filename: "asset.png", Data: []byte("b")},
		{Filename: "asset.png", Data: []byte("c")},
	})
	entries := readArchive(t, archive)
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	for _, name := range []string{"asset.png", "1-asset.png", "2-asset.png"} {
		if _, ok := entries[name]; !ok {
			t.Fatalf("missing entry %q, got %v", name, keys(entries))
		}
	}
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
