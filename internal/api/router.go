package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/grievance-portal/gateway/internal/api/handler"
	"github.com/grievance-portal/gateway/internal/api/middleware"
	"github.com/grievance-portal/gateway/internal/api/pages"
	"github.com/grievance-portal/gateway/internal/core/domain"
	"github.com/grievance-portal/gateway/internal/core/ports"
)

// proofBodyLimit bounds a multipart proof submission.
const proofBodyLimit = "25M"

// Deps are the services the routes are served by.
type Deps struct {
	Auth       ports.AuthService
	Complaints ports.ComplaintService
	Workers    ports.WorkerService
	Users      ports.UserService
	Dashboard  ports.DashboardService
	Audit      ports.AuditRepository
	Cache      handler.SessionPurger
	Pages      *pages.Table

	CookieSecure   bool
	AuthRatePerMin int
	Log            zerolog.Logger
}

// staff may act on complaints; each action is checked again against the
// complaint's current step.
var staff = []domain.Role{domain.RoleCM, domain.RoleAM, domain.RoleJE, domain.RoleSDO, domain.RoleGM}

// Register installs the validator, the error handler and every gateway
// route on e.
func Register(e *echo.Echo, d Deps) {
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	session := middleware.Session(d.Auth, d.Log)
	anyone := middleware.RequireRoles()

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Cache, d.CookieSecure)
	complaintHandler := handler.NewComplaintHandler(d.Complaints)
	workerHandler := handler.NewWorkerHandler(d.Workers)
	userHandler := handler.NewUserHandler(d.Users)
	dashboardHandler := handler.NewDashboardHandler(d.Dashboard)
	auditHandler := handler.NewAuditHandler(d.Audit)
	pageHandler := handler.NewPageHandler(d.Pages, "/app")

	// --- Auth routes ---
	auth := e.Group("/auth", session)
	limited := middleware.AuthRateLimit(d.AuthRatePerMin)
	auth.POST("/login", authHandler.Login, limited)
	auth.POST("/otp/send", authHandler.SendOTP, limited)
	auth.POST("/otp/verify", authHandler.VerifyOTP, limited)
	auth.GET("/session", authHandler.Session)
	auth.POST("/logout", authHandler.Logout)

	// --- Browser pages ---
	e.GET("/app/*", pageHandler.Resolve, session)

	// --- API ---
	v1 := e.Group("/api/v1", session)
	v1.GET("/roles", dashboardHandler.Roles)
	v1.GET("/dashboard", dashboardHandler.Summary, anyone)

	v1.GET("/complaints/categories", complaintHandler.Categories)
	v1.POST("/complaints", complaintHandler.Submit)
	v1.GET("/complaints", complaintHandler.List, anyone)
	v1.GET("/complaints/:id", complaintHandler.Get, anyone)
	v1.GET("/complaints/:id/audit", auditHandler.Complaint, middleware.RequireRoles(domain.RoleGM))
	v1.POST("/complaints/:id/assign", complaintHandler.Assign, middleware.RequireRoles(domain.RoleCM))
	v1.POST("/complaints/:id/actions", complaintHandler.Act, middleware.RequireRoles(staff...))
	v1.POST("/complaints/:id/proof", complaintHandler.Proof,
		middleware.RequireRoles(domain.RoleJE), echomiddleware.BodyLimit(proofBodyLimit))

	v1.GET("/workers", workerHandler.Roster, middleware.RequireRoles(domain.RoleCM))
	v1.POST("/workers", workerHandler.Create, middleware.RequireRoles(domain.RoleCM))

	v1.GET("/users/me", userHandler.Me, anyone)
	v1.GET("/users", userHandler.List, middleware.RequireRoles(domain.RoleGM, domain.RoleAM))
	v1.POST("/users", userHandler.Create, middleware.RequireRoles(domain.RoleGM))
	v1.PUT("/users/:id", userHandler.Update, middleware.RequireRoles(domain.RoleGM))
	v1.DELETE("/users/:id", userHandler.Delete, middleware.RequireRoles(domain.RoleGM))

	// --- Docs ---
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
