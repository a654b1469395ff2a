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

// NewPublicArtistRouter registers the browse endpoints. The detail route
// reads the optional viewer identity to compute isFollowing.
func NewPublicArtistRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ac := newArtistController(timeout, db)

	// GET /artists?genre=&search=&page=&limit=
	group.GET("/artists", ac.List)

	// GET /artists/:id
	group.GET("/artists/:id", ac.Detail)
}

// NewProtectedArtistRouter covers profile management and fan posts.
func NewProtectedArtistRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ac := newArtistController(timeout, db)

	// POST /artists
	group.POST("/artists", ac.CreateProfile)

	// PUT /artists/:id
	group.PUT("/artists/:id", ac.UpdateProfile)

	// POST /artists/:id/posts
	group.POST("/artists/:id/posts", ac.CreatePost)
}

func newArtistController(timeout time.Duration, db mongo.Database) *controller.ArtistController {
	ar := repository.NewArtistRepository(db, domain.CollectionArtist)
	apr := repository.NewArtistPostRepository(db, domain.CollectionArtistPost)
	tr := repository.NewTrackRepository(db, domain.CollectionTrack)
	pr := repository.NewPlaylistRepository(db, domain.CollectionPlaylist)
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	return controller.NewArtistController(
		usecase.NewArtistUsecase(ar, apr, tr, pr, ur, timeout),
	)
}
