package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/fanstage/fanstage/domain"
	"github.com/fanstage/fanstage/domain/mocks"
	"github.com/fanstage/fanstage/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newInteractionFixture() (*mocks.InteractionRepository, *mocks.TrackRepository, *mocks.PlaylistRepository, *mocks.UserRepository, domain.InteractionUsecase) {
	ir := new(mocks.InteractionRepository)
	tr := new(mocks.TrackRepository)
	pr := new(mocks.PlaylistRepository)
	ur := new(mocks.UserRepository)
	iu := usecase.NewInteractionUsecase(ir, tr, pr, ur, 2*time.Second)
	return ir, tr, pr, ur, iu
}

func TestToggleTrackLike(t *testing.T) {
	userID := primitive.NewObjectID()
	trackID := primitive.NewObjectID()

	t.Run("like", func(t *testing.T) {
		ir, tr, _, ur, iu := newInteractionFixture()
		tr.On("GetByID", mock.Anything, trackID).Return(&domain.Track{ID: trackID, LikeCount: 4}, nil)
		ir.On("GetOne", mock.Anything, userID, domain.InteractionLikeTrack, trackID).Return(nil, nil)
		ir.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interaction")).Return(nil)
		tr.On("IncrementLikeCount", mock.Anything, trackID, 1).Return(nil)
		ur.On("AddLikedTrack", mock.Anything, userID, trackID).Return(nil)

		result, err := iu.ToggleTrackLike(context.Background(), userID, trackID)

		assert.NoError(t, err)
		assert.True(t, result.Liked)
		assert.Equal(t, 5, result.LikeCount)
		ir.AssertExpectations(t)
		tr.AssertExpectations(t)
		ur.AssertExpectations(t)
	})

	t.Run("unlike removes the row", func(t *testing.T) {
		existing := &domain.Interaction{ID: primitive.NewObjectID(), UserID: userID, Type: domain.InteractionLikeTrack, TargetID: trackID}

		ir, tr, _, ur, iu := newInteractionFixture()
		tr.On("GetByID", mock.Anything, trackID).Return(&domain.Track{ID: trackID, LikeCount: 4}, nil)
		ir.On("GetOne", mock.Anything, userID, domain.InteractionLikeTrack, trackID).Return(existing, nil)
		ir.On("Delete", mock.Anything, existing.ID).Return(nil)
		tr.On("IncrementLikeCount", mock.Anything, trackID, -1).Return(nil)
		ur.On("RemoveLikedTrack", mock.Anything, userID, trackID).Return(nil)

		result, err := iu.ToggleTrackLike(context.Background(), userID, trackID)

		assert.NoError(t, err)
		assert.False(t, result.Liked)
		assert.Equal(t, 3, result.LikeCount)
		ir.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unlike at zero stays at zero", func(t *testing.T) {
		existing := &domain.Interaction{ID: primitive.NewObjectID(), UserID: userID, Type: domain.InteractionLikeTrack, TargetID: trackID}

		ir, tr, _, ur, iu := newInteractionFixture()
		tr.On("GetByID", mock.Anything, trackID).Return(&domain.Track{ID: trackID, LikeCount: 0}, nil)
		ir.On("GetOne", mock.Anything, userID, domain.InteractionLikeTrack, trackID).Return(existing, nil)
		ir.On("Delete", mock.Anything, existing.ID).Return(nil)
		tr.On("IncrementLikeCount", mock.Anything, trackID, -1).Return(nil)
		ur.On("RemoveLikedTrack", mock.Anything, userID, trackID).Return(nil)

		result, err := iu.ToggleTrackLike(context.Background(), userID, trackID)

		assert.NoError(t, err)
		assert.Equal(t, 0, result.LikeCount)
	})

	t.Run("missing track", func(t *testing.T) {
		ir, tr, _, _, iu := newInteractionFixture()
		tr.On("GetByID", mock.Anything, trackID).Return(nil, domain.ErrNotFound)

		_, err := iu.ToggleTrackLike(context.Background(), userID, trackID)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		ir.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTogglePlaylistLike(t *testing.T) {
	userID := primitive.NewObjectID()
	creatorID := primitive.NewObjectID()
	playlistID := primitive.NewObjectID()

	t.Run("like awards creator points", func(t *testing.T) {
		playlist := &domain.Playlist{ID: playlistID, CreatorID: creatorID, LikeCount: 1, PlayCount: 2}
		creator := &domain.User{ID: creatorID, CuratorPoints: 95, CuratorLevel: domain.CuratorLevelSeed}

		ir, _, pr, ur, iu := newInteractionFixture()
		pr.On("GetByID", mock.Anything, playlistID).Return(playlist, nil)
		ir.On("GetOne", mock.Anything, userID, domain.InteractionLikePlaylist, playlistID).Return(nil, nil)
		ir.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interaction")).Return(nil)
		pr.On("Update", mock.Anything, playlist).Return(nil)
		ur.On("AddLikedPlaylist", mock.Anything, userID, playlistID).Return(nil)
		ur.On("GetByID", mock.Anything, creatorID).Return(creator, nil)
		ur.On("Update", mock.Anything, creator).Return(nil)

		result, err := iu.TogglePlaylistLike(context.Background(), userID, playlistID)

		assert.NoError(t, err)
		assert.True(t, result.Liked)
		assert.Equal(t, 2, result.LikeCount)
		// 95 + 5 crosses the sprout threshold.
		assert.Equal(t, 100, creator.CuratorPoints)
		assert.Equal(t, domain.CuratorLevelSprout, creator.CuratorLevel)
		// likes*2 + plays*1 + shares*3
		assert.Equal(t, 6, playlist.ExposureScore)
	})

	t.Run("unlike refreshes exposure without touching points", func(t *testing.T) {
		existing := &domain.Interaction{ID: primitive.NewObjectID(), UserID: userID, Type: domain.InteractionLikePlaylist, TargetID: playlistID}
		playlist := &domain.Playlist{ID: playlistID, CreatorID: creatorID, LikeCount: 1}

		ir, _, pr, ur, iu := newInteractionFixture()
		pr.On("GetByID", mock.Anything, playlistID).Return(playlist, nil)
		ir.On("GetOne", mock.Anything, userID, domain.InteractionLikePlaylist, playlistID).Return(existing, nil)
		ir.On("Delete", mock.Anything, existing.ID).Return(nil)
		pr.On("Update", mock.Anything, playlist).Return(nil)
		ur.On("RemoveLikedPlaylist", mock.Anything, userID, playlistID).Return(nil)

		result, err := iu.TogglePlaylistLike(context.Background(), userID, playlistID)

		assert.NoError(t, err)
		assert.False(t, result.Liked)
		assert.Equal(t, 0, result.LikeCount)
		ur.AssertNotCalled(t, "GetByID", mock.Anything, creatorID)
	})
}

func TestSharePlaylist(t *testing.T) {
	userID := primitive.NewObjectID()
	playlistID := primitive.NewObjectID()

	t.Run("increments counter and logs the fact", func(t *testing.T) {
		playlist := &domain.Playlist{ID: playlistID, LikeCount: 2, ShareCount: 1}

		ir, _, pr, _, iu := newInteractionFixture()
		pr.On("GetByID", mock.Anything, playlistID).Return(playlist, nil)
		pr.On("Update", mock.Anything, playlist).Return(nil)
		ir.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interaction")).Return(nil)

		result, err := iu.SharePlaylist(context.Background(), userID, playlistID)

		assert.NoError(t, err)
		assert.Equal(t, 2, result.ShareCount)
		assert.Equal(t, 10, playlist.ExposureScore)
	})

	t.Run("ledger failure does not fail the share", func(t *testing.T) {
		playlist := &domain.Playlist{ID: playlistID}

		ir, _, pr, _, iu := newInteractionFixture()
		pr.On("GetByID", mock.Anything, playlistID).Return(playlist, nil)
		pr.On("Update", mock.Anything, playlist).Return(nil)
		ir.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interaction")).Return(assert.AnError)

		result, err := iu.SharePlaylist(context.Background(), userID, playlistID)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.ShareCount)
	})
}
