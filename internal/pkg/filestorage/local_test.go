package filestorage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("failed to read multipart form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["image"][0]
}

func physicalPathFor(t *testing.T, basePath, baseURL, accessiblePath string) string {
	t.Helper()

	rel := accessiblePath
	if baseURL != "" {
		rel = strings.TrimPrefix(rel, strings.TrimRight(baseURL, "/"))
	}
	return filepath.Join(basePath, filepath.FromSlash(strings.TrimLeft(rel, "/")))
}

func TestSaveFileDeleteFileRoundTrip(t *testing.T) {
	basePath := t.TempDir()
	storage, err := NewLocalStorage(basePath, "")
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	fh := newFileHeader(t, "wallet.png", []byte("not really a png"))
	path, err := storage.SaveFile(fh, "items")
	if err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if !strings.HasPrefix(path, "items/") {
		t.Fatalf("SaveFile() path = %q, want items/ prefix", path)
	}

	physical := physicalPathFor(t, basePath, "", path)
	if _, err := os.Stat(physical); err != nil {
		t.Fatalf("saved file missing at %s: %v", physical, err)
	}

	if err := storage.DeleteFile(path); err != nil {
		t.Fatalf("DeleteFile(%q) error = %v", path, err)
	}
	if _, err := os.Stat(physical); !os.IsNotExist(err) {
		t.Errorf("DeleteFile(%q) left the file at %s", path, physical)
	}
}

func TestDeleteFileStripsBaseURL(t *testing.T) {
	basePath := t.TempDir()
	storage, err := NewLocalStorage(basePath, "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	fh := newFileHeader(t, "keys.jpg", []byte("jpg bytes"))
	path, err := storage.SaveFile(fh, "items")
	if err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if !strings.HasPrefix(path, "/uploads/items/") {
		t.Fatalf("SaveFile() path = %q, want /uploads/items/ prefix", path)
	}

	physical := physicalPathFor(t, basePath, "/uploads", path)
	if _, err := os.Stat(physical); err != nil {
		t.Fatalf("saved file missing at %s: %v", physical, err)
	}

	if err := storage.DeleteFile(path); err != nil {
		t.Fatalf("DeleteFile(%q) error = %v", path, err)
	}
	if _, err := os.Stat(physical); !os.IsNotExist(err) {
		t.Errorf("DeleteFile(%q) left the file at %s", path, physical)
	}
}

func TestDeleteFileMissingAndInvalid(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	if err := storage.DeleteFile("items/does-not-exist.png"); err != nil {
		t.Errorf("DeleteFile() on missing file error = %v, want nil", err)
	}
	if err := storage.DeleteFile(""); err != nil {
		t.Errorf("DeleteFile(\"\") error = %v, want nil", err)
	}
	if err := storage.DeleteFile("../outside.png"); err == nil {
		t.Error("DeleteFile() with a parent traversal should error")
	}
}
