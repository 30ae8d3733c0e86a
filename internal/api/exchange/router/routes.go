// Package router đăng ký các route thuộc domain Exchange.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	exchangehdl "github.com/kanghiee/FIND-SHEEPING-DATE/internal/api/exchange/handler"
	exchangesvc "github.com/kanghiee/FIND-SHEEPING-DATE/internal/api/exchange/service"
	apirouter "github.com/kanghiee/FIND-SHEEPING-DATE/internal/api/router"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/observability"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/recordsource"
)

// Register trả về hàm đăng ký route exchange. middlewares áp cho riêng POST /get_product_info (ví dụ limiter).
func Register(source recordsource.RecordSource, metrics *observability.Metrics, middlewares ...fiber.Handler) apirouter.RegisterFunc {
	return func(root fiber.Router, r *apirouter.Router) error {
		service, err := exchangesvc.NewExchangeService(source, metrics)
		if err != nil {
			return fmt.Errorf("create exchange service: %w", err)
		}
		handler, err := exchangehdl.NewExchangeHandler(service)
		if err != nil {
			return fmt.Errorf("create exchange handler: %w", err)
		}
		apirouter.RegisterRouteWithMiddleware(root, "", "POST", "/get_product_info", middlewares, handler.HandleGetProductInfo)
		return nil
	}
}
