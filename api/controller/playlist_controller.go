package controller

import (
	"net/http"

	"github.com/fanstage/fanstage/domain"
	"github.com/fanstage/fanstage/internal/locale"
	"github.com/gin-gonic/gin"
)

type PlaylistController struct {
	PlaylistUsecase    domain.PlaylistUsecase
	InteractionUsecase domain.InteractionUsecase
}

func NewPlaylistController(playlistUsecase domain.PlaylistUsecase, interactionUsecase domain.InteractionUsecase) *PlaylistController {
	return &PlaylistController{
		PlaylistUsecase:    playlistUsecase,
		InteractionUsecase: interactionUsecase,
	}
}

func (pc *PlaylistController) List(ctx *gin.Context) {
	query := domain.PlaylistQuery{
		Sort:  domain.PlaylistSort(ctx.Query("sort")),
		Limit: parseInt64(ctx.Query("limit")),
		Page:  parseInt64(ctx.Query("page")),
	}

	page, err := pc.PlaylistUsecase.List(ctx.Request.Context(), query)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, page)
}

func (pc *PlaylistController) Detail(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		BadRequestResponse(ctx)
		return
	}

	detail, err := pc.PlaylistUsecase.Detail(ctx.Request.Context(), id, viewerID(ctx))
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

func (pc *PlaylistController) Create(ctx *gin.Context) {
	userID, ok := authUserID(ctx)
	if !ok {
		DomainErrorResponse(ctx, domain.ErrUnauthorized)
		return
	}

	var req domain.CreatePlaylistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		BadRequestResponse(ctx)
		return
	}

	playlist, err := pc.PlaylistUsecase.Create(ctx.Request.Context(), userID, req)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, playlist)
}

func (pc *PlaylistController) Update(ctx *gin.Context) {
	userID, ok := authUserID(ctx)
	if !ok {
		DomainErrorResponse(ctx, domain.ErrUnauthorized)
		return
	}
	id, err := pathID(ctx, "id")
	if err != nil {
		BadRequestResponse(ctx)
		return
	}

	var req domain.UpdatePlaylistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		BadRequestResponse(ctx)
		return
	}

	playlist, err := pc.PlaylistUsecase.Update(ctx.Request.Context(), userID, id, req)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, playlist)
}

func (pc *PlaylistController) Delete(ctx *gin.Context) {
	userID, ok := authUserID(ctx)
	if !ok {
		DomainErrorResponse(ctx, domain.ErrUnauthorized)
		return
	}
	id, err := pathID(ctx, "id")
	if err != nil {
		BadRequestResponse(ctx)
		return
	}

	if err := pc.PlaylistUsecase.Delete(ctx.Request.Context(), userID, id); err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	tag := locale.FromAcceptLanguage(ctx.GetHeader("Accept-Language"))
	ctx.JSON(http.StatusOK, gin.H{"message": locale.Message(tag, locale.CodePlaylistDeleted)})
}

func (pc *PlaylistController) ToggleLike(ctx *gin.Context) {
	userID, ok := authUserID(ctx)
	if !ok {
		DomainErrorResponse(ctx, domain.ErrUnauthorized)
		return
	}
	id, err := pathID(ctx, "id")
	if err != nil {
		BadRequestResponse(ctx)
		return
	}

	result, err := pc.InteractionUsecase.TogglePlaylistLike(ctx.Request.Context(), userID, id)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (pc *PlaylistController) Share(ctx *gin.Context) {
	userID, ok := authUserID(ctx)
	if !ok {
		DomainErrorResponse(ctx, domain.ErrUnauthorized)
		return
	}
	id, err := pathID(ctx, "id")
	if err != nil {
		BadRequestResponse(ctx)
		return
	}

	result, err := pc.InteractionUsecase.SharePlaylist(ctx.Request.Context(), userID, id)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
