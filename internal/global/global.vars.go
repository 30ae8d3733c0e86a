package global

import (
	"github.com/go-playground/validator/v10"

	"github.com/kanghiee/FIND-SHEEPING-DATE/config"
)

// Các biến toàn cục, khởi tạo một lần khi start và chỉ đọc sau đó
var (
	Validate     *validator.Validate   // Validator cho request DTO
	ServerConfig *config.Configuration // Cấu hình server
)
