package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoader_ReadsWholeFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "loader")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	want := []byte{0x00, 0x01, 0xfe, 0xff}
	path := filepath.Join(tmpDir, "blob.bin")
	if err := os.WriteFile(path, want, 0644); err != nil {
		t.Fatal(err)
	}

	var loader Loader
	got, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Load = %v, want %v", got, want)
	}
}

func TestLoader_BufferIsOverwritten(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "loader")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	first := filepath.Join(tmpDir, "first.bin")
	second := filepath.Join(tmpDir, "second.bin")
	if err := os.WriteFile(first, []byte("aaaa"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("bb"), 0644); err != nil {
		t.Fatal(err)
	}

	var loader Loader
	if _, err := loader.Load(first); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// The second load starts over; it must not append to the first.
	got, err := loader.Load(second)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(got) != "bb" {
		t.Fatalf("Load = %q, want %q", got, "bb")
	}
}

func TestLoader_MissingFile(t *testing.T) {
	missing := filepath.Join(os.TempDir(), "rescom-loader-missing.bin")

	var loader Loader
	_, err := loader.Load(missing)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "unable to read") || !strings.Contains(err.Error(), missing) {
		t.Fatalf("error must name the offending path, got: %v", err)
	}
}
