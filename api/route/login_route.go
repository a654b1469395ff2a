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

func NewLoginRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	lc := controller.NewLoginController(
		usecase.NewLoginUsecase(ur, timeout, env.AccessTokenSecret, env.AccessTokenExpiryHour),
	)

	// POST /auth/login
	group.POST("/auth/login", lc.Login)
}
