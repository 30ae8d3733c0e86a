package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về logger entry với request context từ Fiber
func WithRequest(c fiber.Ctx) *logrus.Entry {
	return requestEntry(GetAppLogger(), c)
}

// AuditRequest giống WithRequest nhưng ghi vào audit logger
func AuditRequest(c fiber.Ctx) *logrus.Entry {
	return requestEntry(GetAuditLogger(), c)
}

func requestEntry(l *logrus.Logger, c fiber.Ctx) *logrus.Entry {
	entry := l.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})

	// Request ID do middleware requestid sinh ra, fallback về header
	requestID := requestid.FromContext(c)
	if requestID == "" {
		requestID = c.Get(fiber.HeaderXRequestID)
	}
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}
	return entry
}

// WithModule trả về logger entry với module name (ví dụ: "exchange", "recordsource")
func WithModule(module string) *logrus.Entry {
	return GetAppLogger().WithField("module", module)
}

// WithRequestInfo trả về logger entry với đầy đủ thông tin request và module
func WithRequestInfo(c fiber.Ctx, module string) *logrus.Entry {
	entry := WithRequest(c)
	if module != "" {
		entry = entry.WithField("module", module)
	}
	return entry
}
