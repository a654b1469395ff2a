package route

import (
	"time"

	"github.com/fanstage/fanstage/api/middleware"
	"github.com/fanstage/fanstage/bootstrap"
	"github.com/fanstage/fanstage/mongo"
	"github.com/gin-gonic/gin"
)

// Setup mounts the whole API under /api. Three tiers: open endpoints,
// public browse endpoints that personalize when a token is present, and
// endpoints requiring authentication.
func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, gin *gin.Engine) {
	publicRouter := gin.Group("/api")
	NewSignupRouter(env, timeout, db, publicRouter)
	NewLoginRouter(env, timeout, db, publicRouter)
	NewPublicUserRouter(env, timeout, db, publicRouter)

	optionalRouter := gin.Group("/api")
	optionalRouter.Use(middleware.OptionalJwtAuthMiddleware(env.AccessTokenSecret))
	NewPublicArtistRouter(env, timeout, db, optionalRouter)
	NewPublicTrackRouter(env, timeout, db, optionalRouter)
	NewPublicPlaylistRouter(env, timeout, db, optionalRouter)

	protectedRouter := gin.Group("/api")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))
	NewProfileRouter(env, timeout, db, protectedRouter)
	NewProtectedUserRouter(env, timeout, db, protectedRouter)
	NewProtectedArtistRouter(env, timeout, db, protectedRouter)
	NewProtectedTrackRouter(env, timeout, db, protectedRouter)
	NewProtectedPlaylistRouter(env, timeout, db, protectedRouter)
	NewRecommendationRouter(env, timeout, db, protectedRouter)
}
