package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/common"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/recordsource"
)

// healthPingTimeout giới hạn thời gian ping record source trong health check
const healthPingTimeout = 2 * time.Second

// SystemHandler xử lý các route liên quan đến system operations
type SystemHandler struct {
	source recordsource.RecordSource
}

// NewSystemHandler tạo một instance mới của SystemHandler.
// source có thể nil (health chỉ báo trạng thái api).
func NewSystemHandler(source recordsource.RecordSource) *SystemHandler {
	return &SystemHandler{source: source}
}

// HandleHealth kiểm tra tình trạng hệ thống
// @Summary Kiểm tra tình trạng hệ thống
// @Description Kiểm tra trạng thái của API và kết nối tới record source
// @Produce json
// @Success 200 {object} map[string]interface{} "Hệ thống hoạt động bình thường"
// @Failure 503 {object} map[string]interface{} "Hệ thống đang gặp sự cố"
// @Router /health [get]
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthPingTimeout)
	defer cancel()

	services := fiber.Map{"api": "ok"}
	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services":  services,
	}

	switch {
	case h.source == nil:
		healthData["status"] = "degraded"
		services["record_source"] = "not_initialized"
	default:
		healthData["record_source"] = h.source.Name()
		pinger, ok := h.source.(recordsource.Pinger)
		if !ok {
			services["record_source"] = "ok"
			break
		}
		if err := pinger.Ping(ctx); err != nil {
			healthData["status"] = "degraded"
			services["record_source"] = "error"
			healthData["record_source_error"] = err.Error()
			return JSONResponse(c, common.StatusServiceUnavailable, fiber.Map{
				"code":    common.StatusServiceUnavailable,
				"message": common.MsgServiceUnavailable,
				"data":    healthData,
				"status":  "error",
			})
		}
		services["record_source"] = "ok"
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    healthData,
		"status":  "success",
	})
}
