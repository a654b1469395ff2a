package controller

import (
	"net/http"

	"github.com/fanstage/fanstage/domain"
	"github.com/gin-gonic/gin"
)

type LoginController struct {
	LoginUsecase domain.LoginUsecase
}

func NewLoginController(loginUsecase domain.LoginUsecase) *LoginController {
	return &LoginController{
		LoginUsecase: loginUsecase,
	}
}

func (lc *LoginController) Login(ctx *gin.Context) {
	var req domain.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		BadRequestResponse(ctx)
		return
	}

	resp, err := lc.LoginUsecase.Login(ctx.Request.Context(), req)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
