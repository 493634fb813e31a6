package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/hafaksurgicals/portal/docs"
	"github.com/hafaksurgicals/portal/internal/api/handler"
	"github.com/hafaksurgicals/portal/internal/api/middleware"
	"github.com/hafaksurgicals/portal/internal/core/domain"
	"github.com/hafaksurgicals/portal/internal/core/ports"
	"github.com/hafaksurgicals/portal/internal/core/service"
	"github.com/hafaksurgicals/portal/internal/infrastructure/config"
	"github.com/hafaksurgicals/portal/internal/quote"
)

// Dependencies carries everything the router wires into handlers. The session
// is the single process-wide instance; the router only holds it by reference.
type Dependencies struct {
	Config      *config.Config
	Session     ports.Session
	Auth        ports.AuthAPI
	Equipment   ports.EquipmentAPI
	Categories  ports.CategoryAPI
	Uploads     ports.UploadAPI
	Quotes      *quote.Builder
	ReadyChecks map[string]handler.CheckFunc
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(deps.Session,
		deps.Config.Session.CookieSecret, deps.Config.Session.CookieTTL)
	catalogHandler := handler.NewCatalogHandler(deps.Equipment, deps.Quotes)
	siteHandler := handler.NewSiteHandler(companyInfo(deps.Config), officeInfo(deps.Config))
	equipmentHandler := handler.NewAdminEquipmentHandler(deps.Equipment)
	categoryHandler := handler.NewAdminCategoryHandler(deps.Categories)
	analyticsHandler := handler.NewAnalyticsHandler(service.NewAnalyticsService(deps.Equipment, deps.Categories))
	uploadHandler := handler.NewUploadHandler(deps.Uploads)
	profileHandler := handler.NewProfileHandler(deps.Auth)

	// --- Public catalog & site ---
	e.GET("/api/site/company", siteHandler.Company)
	e.GET("/api/site/office", siteHandler.Office)
	e.GET("/api/products", catalogHandler.List)
	e.GET("/api/products/featured", catalogHandler.Featured)
	e.GET("/api/products/categories", catalogHandler.Categories)
	e.GET("/api/products/search", catalogHandler.Search)
	e.GET("/api/products/:id", catalogHandler.Get)
	e.GET("/api/products/:id/quote-link", catalogHandler.QuoteLink)

	// --- Session ---
	e.POST("/api/session/login", sessionHandler.Login)
	e.POST("/api/session/logout", sessionHandler.Logout)
	e.GET("/api/session", sessionHandler.Current)
	e.POST("/api/session/check", sessionHandler.Check)
	e.POST("/api/session/refresh", sessionHandler.Refresh)

	// --- Admin (guarded) ---
	// The session-state guard is authoritative; the browser cookie narrows
	// access to the operator who actually logged in through this portal.
	admin := e.Group("/api/admin",
		middleware.Guard(deps.Session),
		middleware.BrowserAuth(deps.Config.Session.CookieSecret),
		middleware.RBAC(domain.RoleAdmin, domain.RoleSuperAdmin),
	)
	admin.GET("/equipment", equipmentHandler.List)
	admin.POST("/equipment", equipmentHandler.Create)
	admin.GET("/equipment/stats", equipmentHandler.Stats)
	admin.GET("/equipment/:id", equipmentHandler.Get)
	admin.PUT("/equipment/:id", equipmentHandler.Update)
	admin.DELETE("/equipment/:id", equipmentHandler.Delete)

	admin.GET("/categories", categoryHandler.List)
	admin.POST("/categories", categoryHandler.Create)
	admin.GET("/categories/stats", categoryHandler.Stats)
	admin.GET("/categories/:id", categoryHandler.Get)
	admin.PUT("/categories/:id", categoryHandler.Update)
	admin.DELETE("/categories/:id", categoryHandler.Delete)
	admin.GET("/categories/:id/equipment", categoryHandler.Equipment)

	admin.GET("/analytics", analyticsHandler.Dashboard)
	admin.POST("/uploads", uploadHandler.Upload)
	admin.PUT("/profile", profileHandler.Update)
	admin.PUT("/password", profileHandler.ChangePassword)
	admin.POST("/users", profileHandler.Register)

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.ReadyChecks)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

func companyInfo(cfg *config.Config) domain.CompanyInfo {
	return domain.CompanyInfo{
		Name:        cfg.Site.CompanyName,
		Tagline:     cfg.Site.CompanyTagline,
		Description: cfg.Site.CompanyAbout,
		Website:     cfg.Site.CompanyWebsite,
	}
}

func officeInfo(cfg *config.Config) domain.OfficeInfo {
	return domain.OfficeInfo{
		Address:      cfg.Site.OfficeAddress,
		Phone:        cfg.Site.OfficePhone,
		WhatsApp:     cfg.Site.WhatsAppNumber,
		Email:        cfg.Site.OfficeEmail,
		OpeningHours: cfg.Site.OpeningHours,
		ClosingHours: cfg.Site.ClosingHours,
	}
}
