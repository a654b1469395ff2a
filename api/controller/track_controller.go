package controller

import (
	"net/http"
	"strconv"

	"github.com/fanstage/fanstage/domain"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TrackController struct {
	TrackUsecase       domain.TrackUsecase
	InteractionUsecase domain.InteractionUsecase
}

func NewTrackController(trackUsecase domain.TrackUsecase, interactionUsecase domain.InteractionUsecase) *TrackController {
	return &TrackController{
		TrackUsecase:       trackUsecase,
		InteractionUsecase: interactionUsecase,
	}
}

func (tc *TrackController) List(ctx *gin.Context) {
	query := domain.TrackQuery{
		Genre:  ctx.Query("genre"),
		Search: ctx.Query("search"),
		Sort:   domain.TrackSort(ctx.Query("sort")),
		Limit:  parseInt64(ctx.Query("limit")),
		Page:   parseInt64(ctx.Query("page")),
	}
	if raw := ctx.Query("artistId"); raw != "" {
		artistID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			BadRequestResponse(ctx)
			return
		}
		query.ArtistID = artistID
	}

	page, err := tc.TrackUsecase.List(ctx.Request.Context(), query)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, page)
}

func (tc *TrackController) Detail(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		BadRequestResponse(ctx)
		return
	}

	detail, err := tc.TrackUsecase.Detail(ctx.Request.Context(), id, viewerID(ctx))
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

func (tc *TrackController) Create(ctx *gin.Context) {
	userID, ok := authUserID(ctx)
	if !ok {
		DomainErrorResponse(ctx, domain.ErrUnauthorized)
		return
	}

	var req domain.CreateTrackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		BadRequestResponse(ctx)
		return
	}

	track, err := tc.TrackUsecase.Create(ctx.Request.Context(), userID, req)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, track)
}

// Upload accepts a multipart form with an "audio" file part plus optional
// metadata fields.
func (tc *TrackController) Upload(ctx *gin.Context) {
	userID, ok := authUserID(ctx)
	if !ok {
		DomainErrorResponse(ctx, domain.ErrUnauthorized)
		return
	}

	fileHeader, err := ctx.FormFile("audio")
	if err != nil {
		BadRequestResponse(ctx)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		BadRequestResponse(ctx)
		return
	}
	defer file.Close()

	duration, _ := strconv.Atoi(ctx.PostForm("duration"))
	req := domain.UploadTrackRequest{
		Title:      ctx.PostForm("title"),
		Genre:      ctx.PostForm("genre"),
		Duration:   duration,
		CoverImage: ctx.PostForm("coverImage"),
		Lyrics:     ctx.PostForm("lyrics"),
		Filename:   fileHeader.Filename,
	}

	track, err := tc.TrackUsecase.Upload(ctx.Request.Context(), userID, req, file)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, track)
}

func (tc *TrackController) ToggleLike(ctx *gin.Context) {
	userID, ok := authUserID(ctx)
	if !ok {
		DomainErrorResponse(ctx, domain.ErrUnauthorized)
		return
	}
	trackID, err := pathID(ctx, "id")
	if err != nil {
		BadRequestResponse(ctx)
		return
	}

	result, err := tc.InteractionUsecase.ToggleTrackLike(ctx.Request.Context(), userID, trackID)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
