package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// FilterHook lọc log entries theo:
// - Module (ví dụ: exchange, recordsource, system)
// - Endpoint (ví dụ: /get_product_info)
// - Method (GET, POST)
// - Log Type (trace, debug, info, warn, error, fatal)
//
// Entry bị lọc được đánh dấu bằng field "_filtered", AsyncHook sẽ bỏ qua.
// Entry không có field tương ứng (ví dụ log khởi động không có "module") luôn được giữ.
type FilterHook struct {
	allowedModules   map[string]bool
	allowedEndpoints map[string]bool
	allowedMethods   map[string]bool
	allowedLogTypes  map[string]bool
}

// NewFilterHook tạo một filter hook mới với cấu hình
func NewFilterHook(cfg *LogConfig) *FilterHook {
	return &FilterHook{
		allowedModules:   parseFilter(cfg.FilterModules),
		allowedEndpoints: parseFilter(cfg.FilterEndpoints),
		allowedMethods:   parseFilter(cfg.FilterMethods),
		allowedLogTypes:  parseFilter(cfg.FilterLogTypes),
	}
}

// parseFilter parse "value1,value2" thành set (lowercase). Trả về nil nếu cho phép tất cả.
func parseFilter(filterStr string) map[string]bool {
	filterStr = strings.TrimSpace(filterStr)
	if filterStr == "" || filterStr == "*" {
		return nil
	}

	result := make(map[string]bool)
	for _, v := range strings.Split(filterStr, ",") {
		v = strings.TrimSpace(v)
		if v == "*" {
			return nil
		}
		if v != "" {
			result[strings.ToLower(v)] = true
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đánh dấu entry nếu không thỏa filter
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	if !h.allows(entry) {
		entry.Data[filteredKey] = true
	}
	return nil
}

// allows kiểm tra entry có được ghi hay không
func (h *FilterHook) allows(entry *logrus.Entry) bool {
	if h.allowedLogTypes != nil && !h.allowedLogTypes[strings.ToLower(entry.Level.String())] {
		return false
	}
	if !matchField(h.allowedModules, entry.Data["module"]) {
		return false
	}
	if !matchField(h.allowedEndpoints, entry.Data["path"]) {
		return false
	}
	if !matchField(h.allowedMethods, entry.Data["method"]) {
		return false
	}
	return true
}

func matchField(allowed map[string]bool, value interface{}) bool {
	if allowed == nil || value == nil {
		return true
	}
	s, ok := value.(string)
	if !ok {
		return true
	}
	return allowed[strings.ToLower(s)]
}
