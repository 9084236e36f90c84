package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloghive/bloglist-api/internal/api/handler"
	"github.com/bloghive/bloglist-api/internal/api/middleware"
	"github.com/bloghive/bloglist-api/internal/core/ports"
)

// Dependencies carries everything the router needs. Services and the
// identity resolver are interfaces so tests can wire in-memory stubs.
// Mongo and Redis are only used by the readiness probe and may be nil.
type Dependencies struct {
	Blogs    ports.BlogService
	Users    ports.UserService
	Auth     ports.AuthService
	Resolver ports.UserFinder
	Logger   zerolog.Logger

	Mongo *mongo.Database
	Redis *redis.Client

	// Metrics registers the echoprometheus middleware and GET /metrics.
	// Left false in tests: the middleware registers collectors with the
	// default registry and cannot be registered twice per process.
	Metrics bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	if deps.Metrics {
		e.Use(echoprometheus.NewMiddleware("bloglist"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Handlers ---
	blogHandler := handler.NewBlogHandler(deps.Blogs)
	userHandler := handler.NewUserHandler(deps.Users)
	loginHandler := handler.NewLoginHandler(deps.Auth)

	// --- Blog routes: token extraction always runs, verification only
	// when a token is present. Handlers decide whether auth is mandatory.
	blogs := e.Group("/api/blogs",
		middleware.TokenExtractor(),
		middleware.UserExtractor(deps.Auth, deps.Resolver),
	)
	blogs.GET("", blogHandler.List)
	blogs.POST("", blogHandler.Create)
	blogs.PUT("/:id", blogHandler.UpdateLikes)
	blogs.DELETE("/:id", blogHandler.Delete)

	// --- User and login routes (no auth required) ---
	e.GET("/api/users", userHandler.List)
	e.POST("/api/users", userHandler.Register)
	e.POST("/api/login", loginHandler.Login)

	// --- Health probes ---
	e.GET("/health", handler.NewHealthHandler().Liveness) // liveness – is the process alive?
	if deps.Mongo != nil && deps.Redis != nil {
		readiness := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
		e.GET("/health/ready", readiness.Readiness) // readiness – are dependencies up?
	}

	return e
}
