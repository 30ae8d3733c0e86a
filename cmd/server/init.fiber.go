package main

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/kanghiee/FIND-SHEEPING-DATE/config"
	basehdl "github.com/kanghiee/FIND-SHEEPING-DATE/internal/api/base/handler"
	exchangerouter "github.com/kanghiee/FIND-SHEEPING-DATE/internal/api/exchange/router"
	apirouter "github.com/kanghiee/FIND-SHEEPING-DATE/internal/api/router"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/common"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/logger"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/observability"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/recordsource"
	"github.com/kanghiee/FIND-SHEEPING-DATE/web"
)

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết.
// reg là registry Prometheus dùng cho metrics của service và endpoint /metrics.
func InitFiberApp(cfg *config.Configuration, source recordsource.RecordSource, reg *prometheus.Registry) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		// =========================================
		// 1. CẤU HÌNH CƠ BẢN
		// =========================================
		AppName:       "Exchange Lookup",
		ServerHeader:  "Exchange Lookup",
		StrictRouting: true, // /foo và /foo/ là khác nhau
		CaseSensitive: true,

		// =========================================
		// 2. CẤU HÌNH PERFORMANCE
		// =========================================
		BodyLimit:       64 * 1024, // Body chỉ có name + contact
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,

		// =========================================
		// 3. CẤU HÌNH TIMEOUT
		// =========================================
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		// =========================================
		// 4. CẤU HÌNH ERROR HANDLING
		// =========================================
		ErrorHandler: errorHandler,
	})

	// =========================================
	// MIDDLEWARE STACK
	// =========================================

	// 1. Request ID Middleware - Tạo ID duy nhất cho mỗi request để trace
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))

	// 2. CORS Middleware - đặt ở đầu để xử lý preflight requests trước các middleware khác
	app.Use(cors.New(cors.Config{
		AllowOrigins:     parseOrigins(cfg.CORS_Origins),
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID", "X-Requested-With"},
		AllowCredentials: cfg.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	// 3. Security Headers Middleware
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		if cfg.EnableTLS {
			c.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		return c.Next()
	})

	// 4. Recover Middleware - panic được log, response do errorHandler trả về
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithFields(panicFields(c, e)).Error("Panic recovered")
		},
	}))

	// 5. Rate Limiting Middleware - chỉ áp cho endpoint tra cứu, tắt mặc định
	var lookupMiddlewares []fiber.Handler
	log := logger.GetAppLogger()
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		lookupMiddlewares = append(lookupMiddlewares, newLookupLimiter(cfg))
		log.Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
	} else {
		log.Info("Rate limiting disabled")
	}

	metrics := observability.NewMetrics("", reg)
	systemHandler := basehdl.NewSystemHandler(source)

	err := apirouter.SetupRoutes(app,
		func(root fiber.Router, r *apirouter.Router) error {
			root.Get("/", web.HandleIndex)
			root.Get("/health", systemHandler.HandleHealth)
			root.Get("/metrics", adaptor.HTTPHandler(observability.HandlerFor(reg)))
			return nil
		},
		exchangerouter.Register(source, metrics, lookupMiddlewares...),
	)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// newLookupLimiter giới hạn số request theo IP
func newLookupLimiter(cfg *config.Configuration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.RateLimit_Max,
		Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			logger.WithRequest(c).Warn(common.MsgTooManyRequests)
			return basehdl.JSONResponse(c, common.StatusTooManyRequests, fiber.Map{
				"error": common.MsgTooManyRequestsForCustomers,
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
	})
}

// parseOrigins tách CORS_ORIGINS theo dấu phẩy, "*" cho phép tất cả
func parseOrigins(origins string) []string {
	if strings.TrimSpace(origins) == "*" || strings.TrimSpace(origins) == "" {
		return []string{"*"}
	}
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, origin := range parts {
		if origin = strings.TrimSpace(origin); origin != "" {
			out = append(out, origin)
		}
	}
	return out
}

// panicFields không ghi body vì body chứa tên và số điện thoại khách hàng
func panicFields(c fiber.Ctx, e interface{}) logrus.Fields {
	return logrus.Fields{
		"panic":     e,
		"body_size": len(c.Body()),
	}
}

// errorHandler trả mọi lỗi chưa được handler xử lý về dạng {"error": message}
func errorHandler(c fiber.Ctx, err error) error {
	code := common.StatusInternalServerError
	message := common.MsgInternalErrorForCustomers
	errorCode := common.ErrCodeInternalServer.Code

	var customErr *common.Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &customErr):
		code = customErr.StatusCode
		message = customErr.Message
		errorCode = customErr.Code.Code
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		switch code {
		case fiber.StatusNotFound:
			message = common.MsgRouteNotFound
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusRequestEntityTooLarge:
			message = common.MsgInvalidBody
			errorCode = common.ErrCodeValidationFormat.Code
		case fiber.StatusTooManyRequests:
			message = common.MsgTooManyRequestsForCustomers
		default:
			message = fiberErr.Message
		}
	}

	// Client gọi https vào server http: không log, trả hướng dẫn
	errMsg := err.Error()
	if strings.Contains(errMsg, "unsupported http request method") &&
		(strings.Contains(errMsg, "\x16\x03\x01") || strings.Contains(errMsg, "error when reading request headers")) {
		return basehdl.JSONResponse(c, common.StatusBadRequest, fiber.Map{
			"error": "Server chỉ hỗ trợ HTTP. Vui lòng sử dụng http:// thay vì https://",
		})
	}

	entry := logger.WithRequest(c).WithFields(map[string]interface{}{
		"code":      code,
		"errorCode": errorCode,
		"message":   message,
	}).WithError(err)
	if code >= common.StatusInternalServerError {
		entry.Error("Request error")
		logger.GetErrorLogger().WithFields(entry.Data).Error(common.MsgInternalError)
	} else {
		entry.Warn("Request error")
	}

	return basehdl.JSONResponse(c, code, fiber.Map{"error": message})
}
