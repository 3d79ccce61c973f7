package api

import (
	stdhttp "net/http"

	intconfig "academy/internal/config"
	h "academy/internal/http/handlers"
	"academy/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func NewRouter(cfg intconfig.Config, handler h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(cfg.AllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.GET("/db-check", handler.DBCheck)

		api.GET("/categories", handler.CategoryMenu)

		courses := api.Group("/courses")
		courses.GET("", handler.ListCourses)
		courses.GET("/search", handler.SearchCourses)
		courses.GET("/top-viewed", handler.TopViewedCourses)
		courses.GET("/top-new", handler.TopNewestCourses)
		courses.GET("/:id", handler.GetCourse)
		courses.GET("/:id/reviews", handler.CourseReviews)

		// Admin catalog table; authentication sits in front of this
		// service, outside this process.
		admin := api.Group("/admin")
		admin.GET("/courses", handler.AdminCourses)
	}

	return r
}
