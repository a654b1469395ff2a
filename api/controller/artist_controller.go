package controller

import (
	"net/http"
	"strconv"

	"github.com/fanstage/fanstage/domain"
	"github.com/gin-gonic/gin"
)

type ArtistController struct {
	ArtistUsecase domain.ArtistUsecase
}

func NewArtistController(artistUsecase domain.ArtistUsecase) *ArtistController {
	return &ArtistController{
		ArtistUsecase: artistUsecase,
	}
}

func (ac *ArtistController) List(ctx *gin.Context) {
	query := domain.ArtistQuery{
		Genre:  ctx.Query("genre"),
		Search: ctx.Query("search"),
		Limit:  parseInt64(ctx.Query("limit")),
		Page:   parseInt64(ctx.Query("page")),
	}

	page, err := ac.ArtistUsecase.List(ctx.Request.Context(), query)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, page)
}

func (ac *ArtistController) Detail(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		BadRequestResponse(ctx)
		return
	}

	detail, err := ac.ArtistUsecase.Detail(ctx.Request.Context(), id, viewerID(ctx))
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

func (ac *ArtistController) CreateProfile(ctx *gin.Context) {
	userID, ok := authUserID(ctx)
	if !ok {
		DomainErrorResponse(ctx, domain.ErrUnauthorized)
		return
	}

	var req domain.CreateArtistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		BadRequestResponse(ctx)
		return
	}

	artist, err := ac.ArtistUsecase.CreateProfile(ctx.Request.Context(), userID, req)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, artist)
}

func (ac *ArtistController) UpdateProfile(ctx *gin.Context) {
	userID, ok := authUserID(ctx)
	if !ok {
		DomainErrorResponse(ctx, domain.ErrUnauthorized)
		return
	}
	artistID, err := pathID(ctx, "id")
	if err != nil {
		BadRequestResponse(ctx)
		return
	}

	var req domain.UpdateArtistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		BadRequestResponse(ctx)
		return
	}

	artist, err := ac.ArtistUsecase.UpdateProfile(ctx.Request.Context(), userID, artistID, req)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, artist)
}

func (ac *ArtistController) CreatePost(ctx *gin.Context) {
	userID, ok := authUserID(ctx)
	if !ok {
		DomainErrorResponse(ctx, domain.ErrUnauthorized)
		return
	}
	artistID, err := pathID(ctx, "id")
	if err != nil {
		BadRequestResponse(ctx)
		return
	}

	var req domain.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		BadRequestResponse(ctx)
		return
	}

	post, err := ac.ArtistUsecase.CreatePost(ctx.Request.Context(), userID, artistID, req)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

func parseInt64(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
