package controller

import (
	"net/http"

	"github.com/fanstage/fanstage/domain"
	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileUsecase domain.ProfileUsecase
}

func NewProfileController(profileUsecase domain.ProfileUsecase) *ProfileController {
	return &ProfileController{
		ProfileUsecase: profileUsecase,
	}
}

// Me returns the authenticated user's own profile with relations resolved.
func (pc *ProfileController) Me(ctx *gin.Context) {
	userID, ok := authUserID(ctx)
	if !ok {
		DomainErrorResponse(ctx, domain.ErrUnauthorized)
		return
	}

	profile, err := pc.ProfileUsecase.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
