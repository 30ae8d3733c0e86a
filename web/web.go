// Package web nhúng trang tra cứu tĩnh vào binary.
package web

import (
	_ "embed"

	"github.com/gofiber/fiber/v3"
)

//go:embed index.html
var indexHTML []byte

// IndexHTML trả về nội dung trang index
func IndexHTML() []byte {
	return indexHTML
}

// HandleIndex phục vụ GET /
func HandleIndex(c fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).Send(indexHTML)
}
