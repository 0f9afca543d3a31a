// Package document recognizes uploaded resumes and extracts their plain text.
package document

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported MIME types.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupported is returned for anything that is not a PDF or a DOCX file.
var ErrUnsupported = errors.New("only PDF and DOCX files are supported")

var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte("PK\x03\x04")

	paragraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:tab/>`)
	xmlTag       = regexp.MustCompile(`<[^>]*>`)
	blankRuns    = regexp.MustCompile(`[ \t]+`)
)

// Type is a recognized document format.
type Type struct {
	MIME string
	Ext  string
}

// Sniff identifies data by its content. The file name only breaks the tie
// between DOCX and other zip based formats.
func Sniff(fileName string, data []byte) (Type, error) {
	switch {
	case bytes.HasPrefix(data, pdfMagic):
		return Type{MIME: MimePDF, Ext: ".pdf"}, nil
	case bytes.HasPrefix(data, zipMagic) && isWordDocument(data):
		return Type{MIME: MimeDOCX, Ext: ".docx"}, nil
	case bytes.HasPrefix(data, zipMagic) && strings.EqualFold(filepath.Ext(fileName), ".docx"):
		return Type{}, fmt.Errorf("%s is not a valid docx file: %w", fileName, ErrUnsupported)
	default:
		return Type{}, ErrUnsupported
	}
}

func isWordDocument(data []byte) bool {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			return true
		}
	}

	return false
}

// ExtractText returns the plain text of a document of the given MIME type.
func ExtractText(mime string, data []byte) (string, error) {
	switch mime {
	case MimePDF:
		return extractPDF(data)
	case MimeDOCX:
		return extractDOCX(data)
	default:
		return "", fmt.Errorf("%s: %w", mime, ErrUnsupported)
	}
}

func extractPDF(data []byte) (text string, err error) {
	// the pdf reader panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("could not read pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("could not read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("could not read pdf page %d: %w", i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("could not read docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return xmlToText(doc.Editable().GetContent()), nil
}

// xmlToText flattens WordprocessingML into lines of text.
func xmlToText(content string) string {
	content = paragraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	content = html.UnescapeString(content)

	lines := strings.Split(content, "\n")
	out := lines[:0]
	for _, l := range lines {
		l = strings.TrimSpace(blankRuns.ReplaceAllString(l, " "))
		if l != "" {
			out = append(out, l)
		}
	}

	return strings.Join(out, "\n")
}
