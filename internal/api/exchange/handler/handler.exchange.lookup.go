// Package exchangehdl xử lý HTTP cho domain Exchange.
package exchangehdl

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	basehdl "github.com/kanghiee/FIND-SHEEPING-DATE/internal/api/base/handler"
	exchangedto "github.com/kanghiee/FIND-SHEEPING-DATE/internal/api/exchange/dto"
	exchangesvc "github.com/kanghiee/FIND-SHEEPING-DATE/internal/api/exchange/service"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/common"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/global"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/logger"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/utility"
)

// ExchangeHandler xử lý tra cứu thông tin giao hàng đổi trả
type ExchangeHandler struct {
	service *exchangesvc.ExchangeService
}

// NewExchangeHandler tạo mới ExchangeHandler
func NewExchangeHandler(service *exchangesvc.ExchangeService) (*ExchangeHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("exchange handler: service is nil")
	}
	return &ExchangeHandler{service: service}, nil
}

// HandleGetProductInfo tra cứu đổi trả theo tên và số điện thoại
// @Summary Tra cứu thông tin giao hàng đổi trả
// @Accept json
// @Produce json
// @Param body body exchangedto.LookupExchangeInput true "Tên và số điện thoại"
// @Success 200 {object} exchangedto.LookupDataResponse "Có kết quả"
// @Success 200 {object} exchangedto.LookupMessageResponse "Không có kết quả"
// @Failure 400 {object} exchangedto.ErrorResponse "Số điện thoại sai định dạng"
// @Failure 503 {object} exchangedto.ErrorResponse "Không đọc được dữ liệu"
// @Router /get_product_info [post]
func (h *ExchangeHandler) HandleGetProductInfo(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input exchangedto.LookupExchangeInput
		if err := c.Bind().Body(&input); err != nil {
			logger.WithRequestInfo(c, "exchange").WithError(err).Warn("Body không hợp lệ")
			return common.ErrInvalidBody.WithDetails(err)
		}
		if err := global.ValidateStruct(&input); err != nil {
			return common.ErrInvalidContactFormat.WithDetails(err)
		}

		result, err := h.service.LookupExchangeInfo(c.Context(), input.Name, input.Contact)
		if err != nil {
			if errors.Is(err, common.ErrRecordSourceUnavailable) {
				logger.WithRequestInfo(c, "exchange").WithError(err).Error("Tra cứu thất bại")
			}
			return err
		}

		logger.AuditRequest(c).WithFields(logrus.Fields{
			"module":  "exchange",
			"action":  "lookup",
			"name":    input.Name,
			"contact": utility.FormatContactNumber(input.Contact),
			"matched": len(result.Data),
		}).Info("Tra cứu đổi trả")

		switch {
		case len(result.Data) > 0:
			return basehdl.JSONResponse(c, common.StatusOK, exchangedto.LookupDataResponse{Data: result.Data})
		case !result.Found:
			return basehdl.JSONResponse(c, common.StatusOK, exchangedto.LookupMessageResponse{Message: common.MsgNoRecentExchange})
		default:
			return common.ErrCustomerNotFound
		}
	})
}

func nameOrEmpty(name *string) string {
	if name == nil {
		return ""
	}
	return *name
}
