package loader

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestSupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     bool
	}{
		{filename: "resume.pdf", want: true},
		{filename: "resume.PDF", want: true},
		{filename: "notes.docx", want: true},
		{filename: "readme.md", want: true},
		{filename: "plain.txt", want: true},
		{filename: "image.png", want: false},
		{filename: "noextension", want: false},
	}

	for _, tc := range tests {
		if got := Supported(tc.filename); got != tc.want {
			t.Errorf("Supported(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}

func TestExtractTextPlain(t *testing.T) {
	t.Parallel()

	got, err := ExtractText("notes.txt", []byte("  hello world\n"))
	if err != nil {
		t.Fatalf("ExtractText returned error: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("text = %q, want %q", got, "hello world")
	}
}

func TestExtractTextUnsupported(t *testing.T) {
	t.Parallel()

	_, err := ExtractText("image.png", []byte{0x89, 0x50})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("error = %v, want ErrUnsupportedType", err)
	}
}

func TestExtractTextDocx(t *testing.T) {
	t.Parallel()

	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second</w:t></w:r><w:r><w:t> paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	got, err := ExtractText("doc.docx", buildDocx(t, doc))
	if err != nil {
		t.Fatalf("ExtractText returned error: %v", err)
	}
	if got != "First paragraph.\nSecond paragraph." {
		t.Fatalf("text = %q", got)
	}
}

func TestExtractTextDocxSkipsDeletions(t *testing.T) {
	t.Parallel()

	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:r><w:t>Kept text.</w:t></w:r>
      <w:del><w:r><w:t>Deleted text.</w:t></w:r></w:del>
    </w:p>
  </w:body>
</w:document>`

	got, err := ExtractText("doc.docx", buildDocx(t, doc))
	if err != nil {
		t.Fatalf("ExtractText returned error: %v", err)
	}
	if got != "Kept text." {
		t.Fatalf("text = %q, want deleted run skipped", got)
	}
}

func TestExtractTextDocxMissingDocument(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if _, err := zw.Create("word/other.xml"); err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	if _, err := ExtractText("doc.docx", buf.Bytes()); err == nil {
		t.Fatal("expected error for docx without document.xml")
	}
}

func TestExtractTextBrokenPDF(t *testing.T) {
	t.Parallel()

	if _, err := ExtractText("broken.pdf", []byte("not a pdf")); err == nil {
		t.Fatal("expected error for non-PDF bytes")
	}
}

func TestParsePlainEmpty(t *testing.T) {
	t.Parallel()

	got, err := ExtractText("empty.md", nil)
	if err != nil {
		t.Fatalf("ExtractText returned error: %v", err)
	}
	if got != "" {
		t.Fatalf("text = %q, want empty", got)
	}
}
