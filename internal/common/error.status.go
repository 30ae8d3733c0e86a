package common

import (
	"errors"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK = 200 // Thành công

	// Client Error Codes (4xx)
	StatusBadRequest      = 400 // Yêu cầu không hợp lệ
	StatusNotFound        = 404 // Không tìm thấy tài nguyên
	StatusTooManyRequests = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
)

// Response Messages
const (
	MsgSuccess            = "Thao tác thành công"
	MsgInternalError      = "Lỗi hệ thống"
	MsgServiceUnavailable = "Dịch vụ không khả dụng"
	MsgTooManyRequests    = "Quá nhiều yêu cầu"
)

// Thông báo hiển thị cho khách hàng (giữ nguyên tiếng Hàn để tương thích với frontend)
const (
	MsgInvalidContactFormat        = "잘못된 전화번호 형식입니다."
	MsgNoRecentExchange            = "최근 교환 신청 내역이 없습니다."
	MsgCustomerNotFound            = "해당 고객 정보를 찾을 수 없습니다."
	MsgRecordSourceUnavailable     = "교환 신청 내역을 조회할 수 없습니다. 잠시 후 다시 시도해주세요."
	MsgInvalidBody                 = "요청 형식이 올바르지 않습니다."
	MsgInternalErrorForCustomers   = "일시적인 오류가 발생했습니다."
	MsgTooManyRequestsForCustomers = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."
	MsgRouteNotFound               = "요청한 페이지를 찾을 수 없습니다."
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: VAL_001)
	Category    string // Phân loại lỗi (ví dụ: Validation)
	SubCategory string // Phân loại con (ví dụ: Input)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu",
	}

	// Record Source Errors (SRC_xxx)
	ErrCodeRecordSource = ErrorCode{
		Code:        "SRC_001",
		Category:    "RecordSource",
		SubCategory: "Fetch",
		Description: "Không đọc được dữ liệu từ nguồn (Google Sheets)",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusinessLookup = ErrorCode{
		Code:        "BIZ_003",
		Category:    "Business",
		SubCategory: "Lookup",
		Description: "Không tìm thấy thông tin khách hàng",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is so sánh theo mã lỗi, để các lỗi tạo bằng WithDetails vẫn khớp với lỗi gốc
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code.Code == t.Code.Code && e.Message == t.Message
}

// Unwrap trả về lỗi gốc nếu Details là error
func (e *Error) Unwrap() error {
	if err, ok := e.Details.(error); ok {
		return err
	}
	return nil
}

// WithDetails tạo bản sao của lỗi kèm thông tin chi tiết (không trả về cho client)
func (e *Error) WithDetails(details any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Validation Errors
	ErrInvalidContactFormat = NewError(ErrCodeValidationInput, MsgInvalidContactFormat, StatusBadRequest, nil)
	ErrInvalidBody          = NewError(ErrCodeValidationFormat, MsgInvalidBody, StatusBadRequest, nil)

	// Record Source Errors
	ErrRecordSourceUnavailable = NewError(ErrCodeRecordSource, MsgRecordSourceUnavailable, StatusServiceUnavailable, nil)

	// Business Logic Errors
	ErrCustomerNotFound = NewError(ErrCodeBusinessLookup, MsgCustomerNotFound, StatusNotFound, nil)
)

// StatusCodeOf trả về HTTP status code tương ứng với err (500 nếu không phải *Error)
func StatusCodeOf(err error) int {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return StatusInternalServerError
}
