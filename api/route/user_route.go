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

// NewPublicUserRouter exposes read-only user profiles.
func NewPublicUserRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	uc := newUserController(timeout, db)

	// GET /users/:id
	group.GET("/users/:id", uc.GetProfile)
}

// NewProtectedUserRouter covers profile edits and the follow toggle.
func NewProtectedUserRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	uc := newUserController(timeout, db)

	// PUT /users/:id
	group.PUT("/users/:id", uc.UpdateProfile)

	// POST /users/:id/follow/:artistId
	group.POST("/users/:id/follow/:artistId", uc.ToggleFollow)
}

func newUserController(timeout time.Duration, db mongo.Database) *controller.UserController {
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	ar := repository.NewArtistRepository(db, domain.CollectionArtist)
	tr := repository.NewTrackRepository(db, domain.CollectionTrack)
	pr := repository.NewPlaylistRepository(db, domain.CollectionPlaylist)
	ir := repository.NewInteractionRepository(db, domain.CollectionInteraction)
	return controller.NewUserController(
		usecase.NewUserUsecase(ur, ar, tr, pr, ir, timeout),
	)
}
