package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sahil8017/Axicom-Event-Management-Assignment/docs"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/api/handler"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/api/middleware"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/pkg/logger"
)

// Services bundles the application services the router exposes.
type Services struct {
	Auth    ports.AuthService
	Admin   ports.AdminService
	Vendor  ports.VendorService
	Catalog ports.CatalogService
	Cart    ports.CartService
	Order   ports.OrderService
	Guest   ports.GuestService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	authHandler := handler.NewAuthHandler(svc.Auth)
	adminHandler := handler.NewAdminHandler(svc.Admin)
	vendorHandler := handler.NewVendorHandler(svc.Vendor)
	catalogHandler := handler.NewCatalogHandler(svc.Catalog)
	cartHandler := handler.NewCartHandler(svc.Cart)
	orderHandler := handler.NewOrderHandler(svc.Order)
	guestHandler := handler.NewGuestHandler(svc.Guest)

	requireAuth := middleware.Auth(svc.Auth)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/register-vendor", authHandler.RegisterVendor)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, requireAuth)

	// --- Admin routes ---
	admin := e.Group("/api/admin", requireAuth, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users", adminHandler.CreateUser)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/vendors", adminHandler.ListVendors)
	admin.PUT("/vendors/:id", adminHandler.UpdateVendor)
	admin.PUT("/vendors/:id/membership", adminHandler.UpdateMembership)
	admin.GET("/items", adminHandler.ListItems)
	admin.PUT("/items/:id/approve", adminHandler.ApproveItem)
	admin.PUT("/items/:id/reject", adminHandler.RejectItem)
	admin.DELETE("/items/:id", adminHandler.DeleteItem)

	// --- Vendor routes ---
	vendor := e.Group("/api/vendor", requireAuth, middleware.RBAC(domain.RoleVendor))
	vendor.GET("/profile", vendorHandler.Profile)
	vendor.GET("/items", vendorHandler.ListItems)
	vendor.POST("/items", vendorHandler.CreateItem)
	vendor.PUT("/items/:id", vendorHandler.UpdateItem)
	vendor.DELETE("/items/:id", vendorHandler.DeleteItem)
	vendor.GET("/requests", vendorHandler.ListRequests)
	vendor.PUT("/requests/:id/status", vendorHandler.UpdateRequestStatus)

	// --- User routes (admins may browse as well) ---
	user := e.Group("/api/user", requireAuth, middleware.RBAC(domain.RoleUser, domain.RoleAdmin))
	user.GET("/vendors", catalogHandler.ListVendors)
	user.GET("/vendors/:id/items", catalogHandler.ListVendorItems)
	user.GET("/items", catalogHandler.ListItems)
	user.GET("/cart", cartHandler.Get)
	user.POST("/cart", cartHandler.Add)
	user.DELETE("/cart", cartHandler.Clear)
	user.DELETE("/cart/:id", cartHandler.Remove)
	user.GET("/orders", orderHandler.List)
	user.POST("/orders", orderHandler.Create)
	user.PUT("/orders/:id/cancel", orderHandler.Cancel)
	user.PUT("/orders/:id/pay", orderHandler.Pay)
	user.GET("/guests", guestHandler.List)
	user.POST("/guests", guestHandler.Add)
	user.PUT("/guests/:id", guestHandler.Update)
	user.DELETE("/guests/:id", guestHandler.Remove)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
