package xml

import (
	"path/filepath"
	"testing"
)

func TestLoadFileNotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.xml"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	xerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error is %T, want *Error", err)
	}
	if xerr.ID != ErrFileNotFound {
		t.Fatalf("ID = %v, want ErrFileNotFound", xerr.ID)
	}
}

func TestSaveFileThenLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.xml")

	doc := NewDocument()
	if err := doc.Parse([]byte(`<r a="1"><child/></r>`)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := doc.SaveFile(path, true); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got, want := loaded.CompactString(), `<r a="1"><child/></r>`; got != want {
		t.Fatalf("CompactString() = %q, want %q", got, want)
	}
}
