package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/common"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Các message cho khách hàng là tiếng Hàn nên luôn khai báo charset
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// ErrorResponse trả về lỗi dạng {"error": message}.
// Với *common.Error dùng StatusCode và Message của nó; lỗi khác thành 500 với message chung,
// chi tiết lỗi chỉ được ghi log.
func ErrorResponse(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return JSONResponse(c, customErr.StatusCode, fiber.Map{"error": customErr.Message})
	}
	logger.WithRequest(c).WithError(err).Error("Lỗi không xác định khi xử lý request")
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{"error": common.MsgInternalErrorForCustomers})
}

// SafeHandlerWrapper bọc handler với recover để bắt panic: server luôn trả response cho client.
// Lỗi trả về từ fn được chuyển thành response qua ErrorResponse.
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithRequest(c).
				WithField("panic", fmt.Sprintf("%v", r)).
				WithField("stack", string(debug.Stack())).
				Error("Panic trong handler")
			err = JSONResponse(c, common.StatusInternalServerError, fiber.Map{"error": common.MsgInternalErrorForCustomers})
		}
	}()

	if err := fn(); err != nil {
		return ErrorResponse(c, err)
	}
	return nil
}
