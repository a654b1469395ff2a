package controller

import (
	"github.com/fanstage/fanstage/domain"
	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationUsecase domain.RecommendationUsecase
}

func NewRecommendationController(recommendationUsecase domain.RecommendationUsecase) *RecommendationController {
	return &RecommendationController{
		RecommendationUsecase: recommendationUsecase,
	}
}

func (rc *RecommendationController) Artists(ctx *gin.Context) {
	userID, ok := authUserID(ctx)
	if !ok {
		DomainErrorResponse(ctx, domain.ErrUnauthorized)
		return
	}

	recommendations, err := rc.RecommendationUsecase.RecommendedArtists(ctx.Request.Context(), userID)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	SuccessResponse(ctx, "recommendations", recommendations, len(recommendations))
}

func (rc *RecommendationController) Tracks(ctx *gin.Context) {
	userID, ok := authUserID(ctx)
	if !ok {
		DomainErrorResponse(ctx, domain.ErrUnauthorized)
		return
	}

	tracks, err := rc.RecommendationUsecase.RecommendedTracks(ctx.Request.Context(), userID)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	SuccessResponse(ctx, "tracks", tracks, len(tracks))
}
