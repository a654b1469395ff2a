package controller

import (
	"net/http"

	"github.com/fanstage/fanstage/domain"
	"github.com/gin-gonic/gin"
)

type SignupController struct {
	SignupUsecase domain.SignupUsecase
}

func NewSignupController(signupUsecase domain.SignupUsecase) *SignupController {
	return &SignupController{
		SignupUsecase: signupUsecase,
	}
}

func (sc *SignupController) Signup(ctx *gin.Context) {
	var req domain.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		BadRequestResponse(ctx)
		return
	}

	resp, err := sc.SignupUsecase.Register(ctx.Request.Context(), req)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}
