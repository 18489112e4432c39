package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"yatube/backend/internal/auth"
	"yatube/backend/internal/cache"
	"yatube/backend/internal/config"
	"yatube/backend/internal/handler"
	"yatube/backend/internal/metrics"
	"yatube/backend/internal/middleware"

	_ "yatube/backend/docs"
)

// Options wires the router. Cache and Metrics may be nil.
type Options struct {
	Handler  *handler.Handler
	Users    auth.UserLookup
	Config   *config.Config
	Cache    cache.Cache
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

// Setup builds the gin engine with every route of the site.
func Setup(opts Options) *gin.Engine {
	h := opts.Handler
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.Recovery(logger), middleware.Logger(logger))
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
	router.Use(auth.Authenticate(cfg.JWTSecret, opts.Users))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	if opts.Metrics != nil {
		gatherer := opts.Gatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	if cfg.S3.Bucket == "" && cfg.MediaURL != "" {
		router.Static(cfg.MediaURL, cfg.MediaRoot)
	}

	// Public pages
	router.GET("/", middleware.PageCache(opts.Cache, cfg.CacheTTL, opts.Metrics, logger), h.Index)
	router.GET("/group/:slug/", h.GroupPosts)
	router.GET("/profile/:username/", h.Profile)
	router.GET("/posts/:id/", h.PostDetail)

	about := router.Group("/about")
	{
		about.GET("/author/", h.AboutAuthor)
		about.GET("/tech/", h.AboutTech)
	}

	// Auth routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/signup/", h.Signup)
		authRoutes.GET("/login/", h.LoginForm)
		authRoutes.POST("/login/", h.Login)
		authRoutes.POST("/logout/", h.Logout)
	}

	// Pages for signed-in users
	member := router.Group("/", auth.RequireLogin(cfg.LoginURL))
	{
		member.GET("/create/", h.PostCreateForm)
		member.POST("/create/", h.PostCreate)
		member.GET("/posts/:id/edit/", h.PostEditForm)
		member.POST("/posts/:id/edit/", h.PostEdit)
		member.POST("/posts/:id/comment/", h.AddComment)

		member.GET("/follow/", h.FollowIndex)
		member.GET("/follow/events/", h.FollowEvents)
		member.Match([]string{http.MethodGet, http.MethodPost}, "/profile/:username/follow/", h.ProfileFollow)
		member.Match([]string{http.MethodGet, http.MethodPost}, "/profile/:username/unfollow/", h.ProfileUnfollow)
	}

	// Admin routes (protected by auth and admin check)
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(auth.AdminMiddleware())
	{
		groups := adminRoutes.Group("/groups")
		{
			groups.POST("/", h.CreateGroup)
			groups.GET("/", h.ListGroups)
			groups.DELETE("/:slug/", h.DeleteGroup)
		}
		adminRoutes.DELETE("/posts/:id/", h.DeletePost)
	}

	router.NoRoute(handler.NotFound)

	return router
}
