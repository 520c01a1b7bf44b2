package handler

import (
	"vglist/backend/internal/auth"
	"vglist/backend/internal/logger"
	"vglist/backend/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds what the routes need besides the handler.
type RouterConfig struct {
	JWTSecret  string
	CronSecret string
	Limiter    ratelimit.Limiter
	Log        *logger.Logger
}

// NewRouter wires every route. Writes go through identity, then the rate
// limiter, then input validation in the handler.
func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), logger.GinMiddleware(log))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ping", h.Ping)

	router.GET("/api/cron/seed", auth.CronSecretMiddleware(cfg.CronSecret), h.Seed)

	apiV1 := router.Group("/api/v1")
	apiV1.Use(auth.IdentifyMiddleware(cfg.JWTSecret))
	{
		// Public reads
		apiV1.GET("/users", h.GetUsersByQuery)
		userRoutes := apiV1.Group("/users/:username")
		{
			userRoutes.GET("", h.GetUserByUsername)
			userRoutes.GET("/bio", h.GetBioByUsername)
			userRoutes.GET("/ratings", h.GetRatingsByUsername)
			userRoutes.GET("/ratings/average", h.GetAverageScoreByUsername)
			userRoutes.GET("/reviews", h.GetReviewsByUsername)
			userRoutes.GET("/reviews/count", h.GetReviewCountByUsername)
			userRoutes.GET("/statuses", h.GetStatusByUsername)
			userRoutes.GET("/statuses/played/count", h.GetGamesPlayedCountByUsername)
			userRoutes.GET("/statuses/recent", h.GetRecentlyPlayedByUsername)
		}

		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("", h.GetAllGames)
			gameRoutes.GET("/search", h.GetGamesByName) // Must be before /:slug
			gameRoutes.GET("/:slug", h.GetGameBySlug)
			gameRoutes.GET("/:slug/ratings", h.GetRatingsBySlug)
		}

		apiV1.GET("/ratings/lookup", h.GetRatingByAuthorAndGameID)
		apiV1.GET("/reviews", h.GetReviewsByGameID)
		apiV1.GET("/reviews/lookup", h.GetReviewByAuthorAndGameID)
		apiV1.GET("/reviews/recent", h.GetRecentReviews)
		apiV1.GET("/reviews/stream", h.StreamReviews)
		apiV1.GET("/statuses/lookup", h.GetStatusByAuthorAndGameID)

		// Private writes
		writeRoutes := apiV1.Group("")
		writeRoutes.Use(auth.RequireIdentity(), ratelimit.Middleware(cfg.Limiter, log))
		{
			writeRoutes.POST("/bio", h.CreateBio)
			writeRoutes.PUT("/bio", h.UpdateBio)
			writeRoutes.DELETE("/bio", h.DeleteBio)

			writeRoutes.POST("/ratings", h.CreateRatingAndStatus)
			writeRoutes.PUT("/ratings/:id", h.UpdateRating)
			writeRoutes.DELETE("/ratings/:id", h.DeleteRating)

			writeRoutes.POST("/reviews", h.CreateReview)
			writeRoutes.PUT("/reviews/:id", h.UpdateReview)
			writeRoutes.DELETE("/reviews/:id", h.DeleteReview)

			writeRoutes.POST("/statuses", h.CreateStatus)
			writeRoutes.PUT("/statuses/:id", h.UpdateStatus)
			writeRoutes.DELETE("/statuses/:id", h.DeleteStatus)
		}
	}

	return router
}
