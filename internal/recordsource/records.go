package recordsource

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/utility"
)

var (
	intPattern   = regexp.MustCompile(`^[+-]?\d+$`)
	floatPattern = regexp.MustCompile(`^[+-]?(\d+\.\d*|\.\d+|\d+)([eE][+-]?\d+)?$`)
)

// RowsToRecords chuyển dữ liệu worksheet (dòng đầu là header) thành danh sách Record.
//   - Dòng ngắn hơn header được bù "" để mọi cột đều có key
//   - Ô thừa bên phải header bị bỏ qua
//   - Ô có nội dung là số được chuyển thành int64/float64
func RowsToRecords(values [][]interface{}) []Record {
	if len(values) == 0 {
		return nil
	}

	header := make([]string, len(values[0]))
	for i, cell := range values[0] {
		header[i] = utility.CellString(cell)
	}

	records := make([]Record, 0, len(values)-1)
	for _, row := range values[1:] {
		rec := make(Record, len(header))
		for i, key := range header {
			var cell interface{} = ""
			if i < len(row) && row[i] != nil {
				cell = row[i]
			}
			rec[key] = numericise(cell)
		}
		records = append(records, rec)
	}
	return records
}

// numericise chuyển chuỗi số thành int64/float64.
// Chuỗi có số 0 ở đầu (ví dụ "01012345678") giữ nguyên để không mất chữ số.
func numericise(v interface{}) interface{} {
	s, ok := v.(string)
	if !ok || s == "" {
		return v
	}
	if hasLeadingZero(s) {
		return s
	}
	if intPattern.MatchString(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		return s
	}
	if floatPattern.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// hasLeadingZero kiểm tra phần nguyên có dạng 0x... (nhiều hơn một chữ số, bắt đầu bằng 0)
func hasLeadingZero(s string) bool {
	s = strings.TrimLeft(s, "+-")
	intPart := s
	if i := strings.IndexAny(s, ".eE"); i >= 0 {
		intPart = s[:i]
	}
	return len(intPart) > 1 && intPart[0] == '0'
}
