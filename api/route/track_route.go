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

// NewPublicTrackRouter registers browsing and playback. The detail route
// counts a play and, for logged-in viewers, records it in the ledger.
func NewPublicTrackRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	tc := newTrackController(env, timeout, db)

	// GET /tracks?artistId=&genre=&search=&sort=&page=&limit=
	group.GET("/tracks", tc.List)

	// GET /tracks/:id
	group.GET("/tracks/:id", tc.Detail)
}

// NewProtectedTrackRouter covers publishing and the like toggle.
func NewProtectedTrackRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	tc := newTrackController(env, timeout, db)

	// POST /tracks
	group.POST("/tracks", tc.Create)

	// POST /tracks/upload (multipart, "audio" file part)
	group.POST("/tracks/upload", tc.Upload)

	// POST /tracks/:id/like
	group.POST("/tracks/:id/like", tc.ToggleLike)
}

func newTrackController(env *bootstrap.Env, timeout time.Duration, db mongo.Database) *controller.TrackController {
	tr := repository.NewTrackRepository(db, domain.CollectionTrack)
	ar := repository.NewArtistRepository(db, domain.CollectionArtist)
	pr := repository.NewPlaylistRepository(db, domain.CollectionPlaylist)
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	ir := repository.NewInteractionRepository(db, domain.CollectionInteraction)
	return controller.NewTrackController(
		usecase.NewTrackUsecase(tr, ar, ir, env.UploadDir, timeout),
		usecase.NewInteractionUsecase(ir, tr, pr, ur, timeout),
	)
}
