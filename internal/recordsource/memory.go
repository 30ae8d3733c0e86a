package recordsource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// MemorySource giữ các dòng trong bộ nhớ. Dùng cho test và chạy local không cần Google Sheets.
type MemorySource struct {
	mu      sync.RWMutex
	records []Record
	err     error
}

// NewMemorySource tạo nguồn bộ nhớ với các dòng ban đầu (giữ nguyên thứ tự)
func NewMemorySource(records ...Record) *MemorySource {
	s := &MemorySource{}
	for _, r := range records {
		s.records = append(s.records, r.clone())
	}
	return s
}

// LoadMemorySourceFile đọc file JSON dạng mảng object (mỗi object là một dòng)
func LoadMemorySourceFile(path string) (*MemorySource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("đọc file dữ liệu %s: %w", path, err)
	}

	var rows []map[string]interface{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("parse file dữ liệu %s: %w", path, err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := make(Record, len(row))
		for k, v := range row {
			rec[k] = fromJSONValue(v)
		}
		records = append(records, rec)
	}
	return NewMemorySource(records...), nil
}

// fromJSONValue chuyển json.Number về int64/float64 giống dữ liệu đọc từ sheet
func fromJSONValue(v interface{}) interface{} {
	num, ok := v.(json.Number)
	if !ok {
		return v
	}
	if n, err := num.Int64(); err == nil {
		return n
	}
	if f, err := num.Float64(); err == nil {
		return f
	}
	return num.String()
}

// Name trả về tên nguồn dùng cho log và metrics
func (s *MemorySource) Name() string {
	return "memory"
}

// Append thêm một dòng vào cuối
func (s *MemorySource) Append(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r.clone())
}

// SetError đặt lỗi trả về cho FetchAll/Ping (nil để xóa), mô phỏng nguồn không khả dụng
func (s *MemorySource) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// FetchAll trả về bản sao của tất cả các dòng theo thứ tự thêm vào
func (s *MemorySource) FetchAll(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.err != nil {
		return nil, s.err
	}

	out := make([]Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.clone()
	}
	return out, nil
}

// Ping trả về lỗi đã đặt bằng SetError
func (s *MemorySource) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
