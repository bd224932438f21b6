package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/alpstech-academy-api/internal/middleware"
	"github.com/noah-isme/alpstech-academy-api/internal/models"
	"github.com/noah-isme/alpstech-academy-api/internal/service"
	"github.com/noah-isme/alpstech-academy-api/pkg/config"
	"github.com/noah-isme/alpstech-academy-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/alpstech-academy-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/alpstech-academy-api/pkg/middleware/requestid"
)

// RouterDeps collects everything the HTTP surface needs.
type RouterDeps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *service.MetricsService
	Sessions *service.SessionService
	Storage  storageProbe

	Auth    *AuthHandler
	Courses *CourseHandler
	Me      *MeHandler
	Admin   *AdminHandler
	System  *MetricsHandler
}

// NewRouter assembles the gin engine.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	logr := deps.Logger
	if logr == nil {
		logr = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS))
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", deps.System.Health)
	r.GET("/ready", deps.System.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", deps.System.Prometheus)
	}
	if cfg.Docs.Enabled {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/login", deps.Auth.Login)
	auth.POST("/signup", deps.Auth.Signup)
	auth.POST("/logout", deps.Auth.Logout)
	auth.GET("/session", deps.Auth.Session)

	courses := api.Group("/courses")
	courses.GET("", deps.Courses.List)
	courses.GET("/:id", deps.Courses.Get)
	courses.GET("/:id/enrollment", deps.Courses.Enrollment)
	courses.POST("/:id/enroll", deps.Courses.Enroll)

	me := api.Group("/me", middleware.RequireSession(deps.Sessions))
	me.GET("/dashboard", deps.Me.Dashboard)
	me.GET("/results", deps.Me.Results)
	me.GET("/results/export", deps.Me.ExportResults)

	admin := api.Group("/admin", middleware.RequireSession(deps.Sessions), middleware.RequireRoles(models.RoleAdmin))
	admin.GET("/dashboard", deps.Admin.Dashboard)
	admin.GET("/students", deps.Admin.Students)
	admin.GET("/demo-students", deps.Admin.DemoStudents)

	admin.GET("/courses", deps.Admin.ListCourses)
	admin.GET("/courses/draft", deps.Admin.CourseDraft)
	admin.POST("/courses", middleware.Audit(logr, "create", "course"), deps.Admin.CreateCourse)
	admin.PUT("/courses/:id", middleware.Audit(logr, "update", "course"), deps.Admin.UpdateCourse)
	admin.PATCH("/courses/:id/status", middleware.Audit(logr, "update_status", "course"), deps.Admin.UpdateCourseStatus)
	admin.DELETE("/courses/:id", middleware.Audit(logr, "delete", "course"), deps.Admin.DeleteCourse)

	admin.GET("/results", deps.Admin.ListResults)
	admin.GET("/results/draft", deps.Admin.ResultDraft)
	admin.GET("/results/export", deps.Admin.ExportResults)
	admin.POST("/results", middleware.Audit(logr, "create", "result"), deps.Admin.CreateResult)
	admin.DELETE("/results/:id", middleware.Audit(logr, "delete", "result"), deps.Admin.DeleteResult)

	return r
}
