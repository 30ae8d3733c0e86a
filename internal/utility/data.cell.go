package utility

import (
	"fmt"
	"strconv"
)

// CellString chuyển giá trị ô (string, số, nil) thành chuỗi để so sánh.
// Số thực được in ở dạng ngắn nhất, không có số mũ: 2.0 -> "2", 1.5 -> "1.5".
func CellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// GetOrDefault trả về giá trị của key trong map, hoặc def nếu key không tồn tại
func GetOrDefault(m map[string]interface{}, key string, def interface{}) interface{} {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// GetStringOrDefault giống GetOrDefault nhưng trả về chuỗi (qua CellString)
func GetStringOrDefault(m map[string]interface{}, key string, def string) string {
	if v, ok := m[key]; ok {
		return CellString(v)
	}
	return def
}
