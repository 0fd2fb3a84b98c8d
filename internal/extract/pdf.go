package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// readPDF extracts text page by page. The pdf library panics on some
// malformed cross-reference tables, so the recover converts that into the
// usual empty-text outcome.
func readPDF(path string, limit int64) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(pageText)
		if int64(builder.Len()) >= limit {
			break
		}
	}

	result := builder.String()
	if int64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}
