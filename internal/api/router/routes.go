package router

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Lưu ý Fiber v3: truyền middleware trực tiếp router.Get(path, mw, handler) không đảm bảo middleware
// được gọi. Route có middleware phải đăng ký qua RegisterRouteWithMiddleware (dùng .Use()).

// RoutePrefix chứa các prefix cho API routes
type RoutePrefix struct {
	Base string // Prefix gốc, các endpoint public nằm ngay dưới root ("")
}

// NewRoutePrefix tạo RoutePrefix với giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{Base: ""}
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app    *fiber.App
	prefix RoutePrefix
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app:    app,
		prefix: NewRoutePrefix(),
	}
}

// App trả về fiber.App đang được đăng ký route
func (r *Router) App() *fiber.App {
	return r.app
}

// RegisterRouteWithMiddleware đăng ký route với middleware qua .Use() của group. Dùng từ domain router.
// Middleware chỉ chạy cho đúng method và path của route này, không chạy cho path con hay method khác.
//
//	RegisterRouteWithMiddleware(root, "", "POST", "/get_product_info", []fiber.Handler{limiter}, h.HandleGetProductInfo)
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router
	if prefix != "" {
		routeGroup = router.Group(prefix)
	}
	method = strings.ToUpper(method)
	for _, mw := range middlewares {
		// Use(path) là prefix match, nên mw được bọc để bỏ qua request không đúng route
		routeGroup.Use(path, scopeToRoute(method, mw))
	}

	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// scopeToRoute chỉ gọi mw khi method khớp và path request trùng path đã đăng ký với Use.
// So sánh không phân biệt hoa thường và bỏ "/" cuối, giống cách router mặc định khớp route.
func scopeToRoute(method string, mw fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		if c.Method() != method {
			return c.Next()
		}
		registered := strings.TrimRight(c.Route().Path, "/")
		requested := strings.TrimRight(c.Path(), "/")
		if !strings.EqualFold(registered, requested) {
			return c.Next()
		}
		return mw(c)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(root fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng. Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	r := NewRouter(app)
	var root fiber.Router = app
	if r.prefix.Base != "" {
		root = app.Group(r.prefix.Base)
	}
	for _, reg := range regs {
		if err := reg(root, r); err != nil {
			return err
		}
	}
	return nil
}
