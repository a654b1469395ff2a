package route

import (
	"time"

	"github.com/fanstage/fanstage/api/controller"
	"github.com/fanstage/fanstage/bootstrap"
	"github.com/fanstage/fanstage/domain"
	"github.com/fanstage/fanstage/mongo"
	"github.com/fanstage/fanstage/repository"
	"github.com/fanstage/fanstage/usecase"
	"github.com/gin-gonic/gin"
)

// NewPublicPlaylistRouter registers the public feed and playlist playback.
func NewPublicPlaylistRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	pc := newPlaylistController(timeout, db)

	// GET /playlists?sort=&page=&limit=
	group.GET("/playlists", pc.List)

	// GET /playlists/:id
	group.GET("/playlists/:id", pc.Detail)
}

// NewProtectedPlaylistRouter covers authoring, likes and shares.
func NewProtectedPlaylistRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	pc := newPlaylistController(timeout, db)

	// POST /playlists
	group.POST("/playlists", pc.Create)

	// PUT /playlists/:id
	group.PUT("/playlists/:id", pc.Update)

	// DELETE /playlists/:id
	group.DELETE("/playlists/:id", pc.Delete)

	// POST /playlists/:id/like
	group.POST("/playlists/:id/like", pc.ToggleLike)

	// POST /playlists/:id/share
	group.POST("/playlists/:id/share", pc.Share)
}

func newPlaylistController(timeout time.Duration, db mongo.Database) *controller.PlaylistController {
	pr := repository.NewPlaylistRepository(db, domain.CollectionPlaylist)
	tr := repository.NewTrackRepository(db, domain.CollectionTrack)
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	ir := repository.NewInteractionRepository(db, domain.CollectionInteraction)
	return controller.NewPlaylistController(
		usecase.NewPlaylistUsecase(pr, tr, ur, ir, timeout),
		usecase.NewInteractionUsecase(ir, tr, pr, ur, timeout),
	)
}
