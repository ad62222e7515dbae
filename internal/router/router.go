package router

import (
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/Jayantx07/Education-Point/internal/handler"
	"github.com/Jayantx07/Education-Point/internal/middleware"
	"github.com/Jayantx07/Education-Point/internal/service"
	"github.com/Jayantx07/Education-Point/pkg/logger"
	corsmiddleware "github.com/Jayantx07/Education-Point/pkg/middleware/cors"
	"github.com/Jayantx07/Education-Point/pkg/middleware/ratelimit"
	reqidmiddleware "github.com/Jayantx07/Education-Point/pkg/middleware/requestid"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Course      *handler.CourseHandler
	Testimonial *handler.TestimonialHandler
	Contact     *handler.ContactHandler
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Overview    *handler.OverviewHandler
	Upload      *handler.UploadHandler
	Health      *handler.HealthHandler
	Metrics     *handler.MetricsHandler
}

// Deps carries everything needed to build the engine.
type Deps struct {
	Handlers       Handlers
	Authenticator  middleware.Authenticator
	Limiter        *ratelimit.Limiter
	MetricsService *service.MetricsService
	Logger         *zap.Logger

	APIPrefix      string
	UploadsDir     string
	AllowedOrigins []string
	TrustedProxies []string
	EnableDocs     bool
}

// New builds the gin engine with global middleware and all routes.
func New(d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	prefix := "/" + strings.Trim(d.APIPrefix, "/")
	if prefix == "/" {
		prefix = "/api"
	}

	r := gin.New()
	var proxies []string
	if len(d.TrustedProxies) > 0 {
		proxies = d.TrustedProxies
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		d.Logger.Warn("invalid trusted proxies, trusting none", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(middleware.Recovery(d.Logger))
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(d.Logger))
	r.Use(corsmiddleware.New(d.AllowedOrigins))
	r.Use(middleware.ErrorHandler())
	if d.MetricsService != nil {
		r.Use(middleware.Metrics(d.MetricsService))
	}
	r.NoRoute(middleware.NotFound())

	h := d.Handlers
	protect := middleware.Protect(d.Authenticator)
	admin := []gin.HandlerFunc{protect, middleware.AdminOnly()}
	optional := middleware.OptionalAuth(d.Authenticator)
	limited := func(c *gin.Context) { c.Next() }
	if d.Limiter != nil {
		limited = d.Limiter.Middleware()
	}

	r.GET("/", h.Health.Root)
	r.GET("/health", h.Health.Health)
	if h.Metrics != nil {
		r.GET("/metrics", h.Metrics.Prometheus)
	}
	if d.UploadsDir != "" {
		r.Static("/uploads", d.UploadsDir)
	}
	if d.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(prefix)

	courses := api.Group("/courses")
	courses.GET("", optional, h.Course.List)
	courses.GET("/popular", h.Course.Popular)
	courses.GET("/:id", h.Course.Get)
	courses.POST("", append(admin, h.Course.Create)...)
	courses.PUT("/:id", append(admin, h.Course.Update)...)
	courses.DELETE("/:id", append(admin, h.Course.Delete)...)

	testimonials := api.Group("/testimonials")
	testimonials.GET("", optional, h.Testimonial.List)
	testimonials.GET("/:id", h.Testimonial.Get)
	testimonials.POST("", append(admin, h.Testimonial.Create)...)
	testimonials.PUT("/:id", append(admin, h.Testimonial.Update)...)
	testimonials.DELETE("/:id", append(admin, h.Testimonial.Delete)...)

	contact := api.Group("/contact")
	contact.POST("", limited, h.Contact.Submit)
	contact.GET("", append(admin, h.Contact.List)...)
	contact.GET("/export", append(admin, h.Contact.Export)...)
	contact.GET("/:id", append(admin, h.Contact.Get)...)
	contact.PUT("/:id", append(admin, h.Contact.UpdateStatus)...)
	contact.DELETE("/:id", append(admin, h.Contact.Delete)...)

	users := api.Group("/users")
	users.POST("/register", limited, h.Auth.Register)
	users.POST("/login", limited, h.Auth.Login)
	users.GET("/profile", protect, h.User.Profile)
	users.PUT("/profile", protect, h.User.UpdateProfile)
	users.DELETE("/profile", protect, h.User.DeleteProfile)
	users.GET("", append(admin, h.User.List)...)
	users.GET("/:id", append(admin, h.User.Get)...)
	users.PUT("/:id", append(admin, h.User.Update)...)
	users.DELETE("/:id", append(admin, h.User.Delete)...)

	api.GET("/admin/overview", append(admin, h.Overview.Overview)...)
	api.POST("/uploads", append(admin, h.Upload.Upload)...)

	return r
}
