package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/colisexpress/delivery-system/internal/api/handler"
	"github.com/colisexpress/delivery-system/internal/api/middleware"
	"github.com/colisexpress/delivery-system/internal/core/domain"
	"github.com/colisexpress/delivery-system/internal/core/service"
	mongodb "github.com/colisexpress/delivery-system/internal/infrastructure/db/mongo"
	redisdb "github.com/colisexpress/delivery-system/internal/infrastructure/db/redis"
	"github.com/colisexpress/delivery-system/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, eventWorkers int, jwtSecret string, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("delivery"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	colisRepo := mongodb.NewColisRepository(db)
	livreurRepo := mongodb.NewLivreurRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	accessRepo := mongodb.NewAccessRepository(db)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	colisService := service.NewColisService(colisRepo, log)
	livreurService := service.NewLivreurService(livreurRepo, log)
	clientService := service.NewClientService(clientRepo, log)
	accessService := service.NewAccessControlService(accessRepo, log)

	dedup := redisdb.NewDedupChecker(rdb)
	eventService := service.NewDeliveryEventService(colisRepo, dedup, log)
	dispatcher := queue.NewDispatcher(eventWorkers, eventService, log)

	authHandler := handler.NewAuthHandler(authService)
	colisHandler := handler.NewColisHandler(colisService)
	livreurHandler := handler.NewLivreurHandler(livreurService)
	clientHandler := handler.NewClientHandler(clientService)
	accessHandler := handler.NewAccessHandler(accessService)
	eventHandler := handler.NewEventHandler(dispatcher)

	auth := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleManager)
	senders := middleware.RBAC(domain.RoleAdmin, domain.RoleManager, domain.RoleClient)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleManager, domain.RoleClient, domain.RoleLivreur)
	fieldStaff := middleware.RBAC(domain.RoleAdmin, domain.RoleManager, domain.RoleLivreur)

	apiGroup := e.Group("/api")

	// --- Auth routes (public) ---
	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)

	// --- User / role / permission administration ---
	apiGroup.GET("/users", authHandler.ListUsers, auth, adminOnly)
	apiGroup.GET("/roles", accessHandler.ListRoles, auth, adminOnly)
	apiGroup.POST("/roles", accessHandler.CreateRole, auth, adminOnly)
	apiGroup.DELETE("/roles/:name", accessHandler.DeleteRole, auth, adminOnly)
	apiGroup.GET("/permissions", accessHandler.ListPermissions, auth, adminOnly)
	apiGroup.POST("/permissions", accessHandler.CreatePermission, auth, adminOnly)
	apiGroup.DELETE("/permissions/:name", accessHandler.DeletePermission, auth, adminOnly)

	// --- Colis routes ---
	apiGroup.GET("/colis", colisHandler.List, auth, staff)
	apiGroup.GET("/colis/myColis", colisHandler.ListMine, auth, anyRole)
	apiGroup.GET("/colis/user/:userId", colisHandler.ListByUser, auth, staff)
	apiGroup.GET("/colis/:id", colisHandler.Get, auth, anyRole)
	apiGroup.POST("/colis/create", colisHandler.Create, auth, senders)
	apiGroup.PUT("/colis/:id/update", colisHandler.Update, auth, senders)
	apiGroup.PUT("/colis/:id/status/:status", colisHandler.ChangeStatus, auth, fieldStaff)
	apiGroup.DELETE("/colis/:id/delete", colisHandler.Delete, auth, staff)

	// --- Livraison (assignment) ---
	apiGroup.POST("/livraison/:colisId/livreur/:livreurId", colisHandler.AssignLivreur, auth, staff)

	// --- Livreur management ---
	apiGroup.GET("/livreurs", livreurHandler.List, auth, staff)
	apiGroup.GET("/livreurs/:id", livreurHandler.Get, auth, staff)
	apiGroup.POST("/livreurs/create", livreurHandler.Create, auth, staff)
	apiGroup.PUT("/livreurs/:id/update", livreurHandler.Update, auth, staff)
	apiGroup.DELETE("/livreurs/:id/delete", livreurHandler.Delete, auth, staff)

	// --- Client management ---
	apiGroup.GET("/clients", clientHandler.List, auth, staff)
	apiGroup.GET("/clients/:id", clientHandler.Get, auth, staff)
	apiGroup.POST("/clients", clientHandler.Create, auth, staff)
	apiGroup.DELETE("/clients/:id", clientHandler.Delete, auth, staff)

	// --- Delivery events ---
	apiGroup.POST("/events", eventHandler.Receive, auth, fieldStaff)
	apiGroup.POST("/events/batch", eventHandler.ReceiveBatch, auth, fieldStaff)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e, dispatcher
}
