package controller

import (
	"net/http"

	"github.com/fanstage/fanstage/domain"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserUsecase domain.UserUsecase
}

func NewUserController(userUsecase domain.UserUsecase) *UserController {
	return &UserController{
		UserUsecase: userUsecase,
	}
}

func (uc *UserController) GetProfile(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		BadRequestResponse(ctx)
		return
	}

	profile, err := uc.UserUsecase.GetPublicProfile(ctx.Request.Context(), id)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

func (uc *UserController) UpdateProfile(ctx *gin.Context) {
	callerID, ok := authUserID(ctx)
	if !ok {
		DomainErrorResponse(ctx, domain.ErrUnauthorized)
		return
	}
	id, err := pathID(ctx, "id")
	if err != nil {
		BadRequestResponse(ctx)
		return
	}

	var req domain.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		BadRequestResponse(ctx)
		return
	}

	user, err := uc.UserUsecase.UpdateProfile(ctx.Request.Context(), callerID, id, req)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// ToggleFollow follows the artist when not yet followed, unfollows otherwise.
func (uc *UserController) ToggleFollow(ctx *gin.Context) {
	callerID, ok := authUserID(ctx)
	if !ok {
		DomainErrorResponse(ctx, domain.ErrUnauthorized)
		return
	}
	userID, err := pathID(ctx, "id")
	if err != nil {
		BadRequestResponse(ctx)
		return
	}
	artistID, err := pathID(ctx, "artistId")
	if err != nil {
		BadRequestResponse(ctx)
		return
	}

	result, err := uc.UserUsecase.ToggleFollow(ctx.Request.Context(), callerID, userID, artistID)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
