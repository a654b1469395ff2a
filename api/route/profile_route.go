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

func NewProfileRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	ar := repository.NewArtistRepository(db, domain.CollectionArtist)
	tr := repository.NewTrackRepository(db, domain.CollectionTrack)
	pr := repository.NewPlaylistRepository(db, domain.CollectionPlaylist)
	pc := controller.NewProfileController(
		usecase.NewProfileUsecase(ur, ar, tr, pr, timeout),
	)

	// GET /auth/me
	group.GET("/auth/me", pc.Me)
}
