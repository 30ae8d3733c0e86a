package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Các loại nguồn dữ liệu (Record Source) được hỗ trợ
const (
	RecordSourceSheets = "sheets" // Google Sheets qua service account
	RecordSourceMemory = "memory" // Dữ liệu trong bộ nhớ (chạy local / test)
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
type Configuration struct {
	Address string `env:"ADDRESS" envDefault:"0.0.0.0:8000"` // Địa chỉ server

	// Google Sheets
	GoogleKeyPath          string `env:"GOOGLE_KEY_PATH"`                                    // Đường dẫn đến service account JSON
	SpreadsheetURLRaw      string `env:"SPREADSHEET_URL_RAW"`                                // URL sheet trạng thái đổi hàng (nguồn chính)
	SpreadsheetURLExchange string `env:"SPREADSHEET_URL_EXCHANGE"`                           // URL sheet đổi hàng nhập tay (chỉ mở, không đọc)
	SheetNameRaw           string `env:"SHEET_NAME_RAW" envDefault:"교환 신청 현황 확인(RAW)"`      // Tên worksheet chính
	SheetNameExchange      string `env:"SHEET_NAME_EXCHANGE" envDefault:"[수기] 자사몰 교환"`      // Tên worksheet phụ
	SheetsFetchTimeout     int    `env:"SHEETS_FETCH_TIMEOUT" envDefault:"10"`               // Timeout đọc sheet (giây)
	RecordSource           string `env:"RECORD_SOURCE" envDefault:"sheets"`                  // sheets | memory
	MemorySourceFile       string `env:"MEMORY_SOURCE_FILE"`                                 // File JSON seed cho nguồn memory

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"false"`     // Bật/tắt rate limiting

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Tìm thư mục config/env, đi lên dần các thư mục cha
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc cấu hình từ file env (nếu có) rồi từ biến môi trường.
// files cho phép chỉ định trực tiếp các file env thay cho config/env/<GO_ENV>.env.
func NewConfig(files ...string) (*Configuration, error) {
	if len(files) == 0 {
		if envPath := getEnvPath(); envPath != "" {
			if _, err := os.Stat(envPath); err == nil {
				files = []string{envPath}
			}
		}
	}

	// godotenv.Load không ghi đè biến môi trường đã có sẵn
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return nil, fmt.Errorf("không thể load file env %v: %w", files, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("lỗi khi parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate kiểm tra các giá trị bắt buộc theo loại nguồn dữ liệu
func (c *Configuration) Validate() error {
	c.RecordSource = strings.ToLower(strings.TrimSpace(c.RecordSource))

	switch c.RecordSource {
	case RecordSourceSheets:
		if c.GoogleKeyPath == "" {
			return fmt.Errorf("thiếu GOOGLE_KEY_PATH cho RECORD_SOURCE=%s", c.RecordSource)
		}
		if c.SpreadsheetURLRaw == "" {
			return fmt.Errorf("thiếu SPREADSHEET_URL_RAW cho RECORD_SOURCE=%s", c.RecordSource)
		}
	case RecordSourceMemory:
	default:
		return fmt.Errorf("RECORD_SOURCE không hợp lệ: %q (sheets | memory)", c.RecordSource)
	}

	if c.SheetsFetchTimeout <= 0 {
		return fmt.Errorf("SHEETS_FETCH_TIMEOUT phải > 0, nhận %d", c.SheetsFetchTimeout)
	}
	return nil
}
