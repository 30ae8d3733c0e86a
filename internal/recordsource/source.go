// Package recordsource cung cấp nguồn dữ liệu dạng bảng (Record Source) cho tra cứu đổi hàng:
// Google Sheets cho production, bộ nhớ cho test và chạy local.
package recordsource

import (
	"context"
	"errors"
)

// Record là một dòng dữ liệu: tên cột (header) -> giá trị ô.
// Giá trị là string, hoặc int64/float64 khi nội dung ô là số.
type Record map[string]interface{}

// RecordSource trả về toàn bộ các dòng theo đúng thứ tự trong nguồn
type RecordSource interface {
	FetchAll(ctx context.Context) ([]Record, error)
	Name() string
}

// Pinger được các nguồn hỗ trợ health check triển khai
type Pinger interface {
	Ping(ctx context.Context) error
}

var (
	ErrInvalidSpreadsheetURL = errors.New("spreadsheet url không hợp lệ")
	ErrWorksheetNotFound     = errors.New("không tìm thấy worksheet")
)

// clone tạo bản sao nông của record để caller không sửa được dữ liệu nguồn
func (r Record) clone() Record {
	cp := make(Record, len(r))
	for k, v := range r {
		cp[k] = v
	}
	return cp
}
