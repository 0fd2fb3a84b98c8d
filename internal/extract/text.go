package extract

import (
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readText decodes up to limit bytes of a text or source file. A UTF-16 BOM
// is honored when present; otherwise the bytes are taken as UTF-8 with
// invalid sequences replaced, matching the "never fail on a weird download"
// contract.
func readText(path string, limit int64) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded := transform.NewReader(io.LimitReader(file, limit), decoder)

	data, err := io.ReadAll(decoded)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}
