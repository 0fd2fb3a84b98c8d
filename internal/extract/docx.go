package extract

import (
	"archive/zip"
	"errors"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// readDocx pulls paragraph text out of a Word container (.docx and the
// macro/template variants share the same zip layout). The main document part
// is word/document.xml; paragraphs are w:p elements whose runs carry w:t
// text nodes.
func readDocx(path string, limit int64) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer archive.Close()

	var document *zip.File
	for _, entry := range archive.File {
		if entry.Name == "word/document.xml" {
			document = entry
			break
		}
	}
	if document == nil {
		return "", errors.New("word/document.xml not found in container")
	}

	part, err := document.Open()
	if err != nil {
		return "", err
	}
	defer part.Close()

	data, err := io.ReadAll(io.LimitReader(part, limit*4))
	if err != nil {
		return "", err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return "", err
	}

	var paragraphs []string
	var total int64
	collectParagraphs(doc.Root(), &paragraphs, &total, limit)
	return strings.Join(paragraphs, "\n"), nil
}

func collectParagraphs(element *etree.Element, paragraphs *[]string, total *int64, limit int64) {
	if element == nil || *total >= limit {
		return
	}
	if element.Tag == "p" {
		var builder strings.Builder
		collectText(element, &builder)
		if builder.Len() > 0 {
			*paragraphs = append(*paragraphs, builder.String())
			*total += int64(builder.Len())
		}
		return
	}
	for _, child := range element.ChildElements() {
		collectParagraphs(child, paragraphs, total, limit)
	}
}

func collectText(element *etree.Element, builder *strings.Builder) {
	if element.Tag == "t" {
		builder.WriteString(element.Text())
		return
	}
	for _, child := range element.ChildElements() {
		collectText(child, builder)
	}
}
