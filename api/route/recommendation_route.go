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

func NewRecommendationRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	ar := repository.NewArtistRepository(db, domain.CollectionArtist)
	tr := repository.NewTrackRepository(db, domain.CollectionTrack)
	rc := controller.NewRecommendationController(
		usecase.NewRecommendationUsecase(ur, ar, tr, timeout),
	)

	// GET /recommendations/artists
	group.GET("/recommendations/artists", rc.Artists)

	// GET /recommendations/tracks
	group.GET("/recommendations/tracks", rc.Tracks)
}
