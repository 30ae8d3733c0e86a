package recordsource

import (
	"fmt"
	"regexp"
	"strings"
)

var spreadsheetURLPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)

// ExtractSpreadsheetID lấy spreadsheet ID từ URL dạng
// https://docs.google.com/spreadsheets/d/<id>/edit#gid=0
func ExtractSpreadsheetID(url string) (string, error) {
	m := spreadsheetURLPattern.FindStringSubmatch(url)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSpreadsheetURL, url)
	}
	return m[1], nil
}

// worksheetRange trả về range A1 bao toàn bộ worksheet, tên được đặt trong dấu nháy đơn
func worksheetRange(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
