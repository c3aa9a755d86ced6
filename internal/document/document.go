// Package document loads plain-text files for practice.
package document

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// maxFileSize bounds how much of a file is read into memory.
const maxFileSize = 64 << 20

// Options controls how file content is cleaned up.
type Options struct {
	// ASCIIOnly drops every non-ASCII character after normalization.
	ASCIIOnly bool
}

// Document is a loaded, normalized text.
type Document struct {
	Name    string
	Path    string
	Content string
}

// ReadError reports a file that could not be read or decoded as text.
type ReadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ReadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to read %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to read %s: %s", e.Path, e.Reason)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Load reads the text file at path.
func Load(path string, opts Options) (Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return Document{}, &ReadError{Path: path, Reason: "cannot open file", Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only file.
			_ = cerr
		}
	}()

	data, err := io.ReadAll(io.LimitReader(file, maxFileSize+1))
	if err != nil {
		return Document{}, &ReadError{Path: path, Reason: "cannot read file", Err: err}
	}
	if len(data) > maxFileSize {
		return Document{}, &ReadError{Path: path, Reason: fmt.Sprintf("file is larger than %d MiB", maxFileSize>>20)}
	}
	doc, err := Parse(path, data, opts)
	if err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Parse decodes data as a UTF-8 text document.
func Parse(path string, data []byte, opts Options) (Document, error) {
	if len(data) > 0 {
		contentType := http.DetectContentType(data)
		if !strings.HasPrefix(contentType, "text/") {
			return Document{}, &ReadError{Path: path, Reason: fmt.Sprintf("not a text file (%s)", contentType)}
		}
	}
	if !utf8.Valid(data) {
		return Document{}, &ReadError{Path: path, Reason: "content is not valid UTF-8"}
	}

	content := strings.TrimPrefix(string(data), "\ufeff")
	content = norm.NFC.String(content)
	if opts.ASCIIOnly {
		content = StripNonASCII(content)
	}
	if strings.TrimSpace(content) == "" {
		return Document{}, &ReadError{Path: path, Reason: "file is empty"}
	}
	return Document{
		Name:    filepath.Base(path),
		Path:    path,
		Content: content,
	}, nil
}
