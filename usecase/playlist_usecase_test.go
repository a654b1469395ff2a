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

func newPlaylistFixture() (*mocks.PlaylistRepository, *mocks.TrackRepository, *mocks.UserRepository, *mocks.InteractionRepository, domain.PlaylistUsecase) {
	pr := new(mocks.PlaylistRepository)
	tr := new(mocks.TrackRepository)
	ur := new(mocks.UserRepository)
	ir := new(mocks.InteractionRepository)
	pu := usecase.NewPlaylistUsecase(pr, tr, ur, ir, 2*time.Second)
	return pr, tr, ur, ir, pu
}

func TestCreatePlaylist(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("awards curator points", func(t *testing.T) {
		user := &domain.User{ID: userID, AccountType: domain.AccountTypeFan, CuratorPoints: 95, CuratorLevel: domain.CuratorLevelSeed}

		pr, _, ur, _, pu := newPlaylistFixture()
		ur.On("GetByID", mock.Anything, userID).Return(user, nil)
		pr.On("Create", mock.Anything, mock.AnythingOfType("*domain.Playlist")).Return(nil)
		ur.On("Update", mock.Anything, user).Return(nil)

		playlist, err := pu.Create(context.Background(), userID, domain.CreatePlaylistRequest{Title: "Late Night"})

		assert.NoError(t, err)
		assert.Equal(t, userID, playlist.CreatorID)
		assert.Equal(t, domain.AccountTypeFan, playlist.CreatorType)
		assert.True(t, playlist.IsPublic)
		assert.NotNil(t, playlist.TrackIDs)
		// 95 + 10 crosses the sprout threshold.
		assert.Equal(t, 105, user.CuratorPoints)
		assert.Equal(t, domain.CuratorLevelSprout, user.CuratorLevel)
	})

	t.Run("respects explicit visibility", func(t *testing.T) {
		user := &domain.User{ID: userID, AccountType: domain.AccountTypeFan}
		isPublic := false

		pr, _, ur, _, pu := newPlaylistFixture()
		ur.On("GetByID", mock.Anything, userID).Return(user, nil)
		pr.On("Create", mock.Anything, mock.AnythingOfType("*domain.Playlist")).Return(nil)
		ur.On("Update", mock.Anything, user).Return(nil)

		playlist, err := pu.Create(context.Background(), userID, domain.CreatePlaylistRequest{
			Title:    "Private",
			IsPublic: &isPublic,
		})

		assert.NoError(t, err)
		assert.False(t, playlist.IsPublic)
	})
}

func TestUpdatePlaylist(t *testing.T) {
	ownerID := primitive.NewObjectID()
	strangerID := primitive.NewObjectID()
	playlistID := primitive.NewObjectID()

	t.Run("only the creator may edit", func(t *testing.T) {
		pr, _, _, _, pu := newPlaylistFixture()
		pr.On("GetByID", mock.Anything, playlistID).Return(&domain.Playlist{ID: playlistID, CreatorID: ownerID}, nil)

		_, err := pu.Update(context.Background(), strangerID, playlistID, domain.UpdatePlaylistRequest{Title: "Hijack"})

		assert.ErrorIs(t, err, domain.ErrForbidden)
		pr.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("refreshes exposure score on save", func(t *testing.T) {
		playlist := &domain.Playlist{ID: playlistID, CreatorID: ownerID, LikeCount: 2, PlayCount: 3, ShareCount: 1}

		pr, _, _, _, pu := newPlaylistFixture()
		pr.On("GetByID", mock.Anything, playlistID).Return(playlist, nil)
		pr.On("Update", mock.Anything, playlist).Return(nil)

		updated, err := pu.Update(context.Background(), ownerID, playlistID, domain.UpdatePlaylistRequest{Title: "Renamed"})

		assert.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, 10, updated.ExposureScore)
	})
}

func TestDeletePlaylist(t *testing.T) {
	ownerID := primitive.NewObjectID()
	strangerID := primitive.NewObjectID()
	playlistID := primitive.NewObjectID()

	t.Run("owner deletes", func(t *testing.T) {
		pr, _, _, _, pu := newPlaylistFixture()
		pr.On("GetByID", mock.Anything, playlistID).Return(&domain.Playlist{ID: playlistID, CreatorID: ownerID}, nil)
		pr.On("Delete", mock.Anything, playlistID).Return(nil)

		assert.NoError(t, pu.Delete(context.Background(), ownerID, playlistID))
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		pr, _, _, _, pu := newPlaylistFixture()
		pr.On("GetByID", mock.Anything, playlistID).Return(&domain.Playlist{ID: playlistID, CreatorID: ownerID}, nil)

		err := pu.Delete(context.Background(), strangerID, playlistID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		pr.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestPlaylistDetail(t *testing.T) {
	playlistID := primitive.NewObjectID()
	viewerID := primitive.NewObjectID()
	trackA := &domain.Track{ID: primitive.NewObjectID()}
	trackB := &domain.Track{ID: primitive.NewObjectID()}

	t.Run("counts the play and restores playback order", func(t *testing.T) {
		playlist := &domain.Playlist{
			ID:       playlistID,
			TrackIDs: []primitive.ObjectID{trackB.ID, trackA.ID},
		}

		pr, tr, _, ir, pu := newPlaylistFixture()
		pr.On("GetByID", mock.Anything, playlistID).Return(playlist, nil)
		pr.On("Update", mock.Anything, playlist).Return(nil)
		ir.On("UpsertPlay", mock.Anything, viewerID, playlistID, domain.TargetPlaylist).Return(nil)
		ir.On("GetOne", mock.Anything, viewerID, domain.InteractionLikePlaylist, playlistID).Return(nil, nil)
		// $in queries come back in arbitrary order.
		tr.On("GetByIDs", mock.Anything, playlist.TrackIDs).Return([]*domain.Track{trackA, trackB}, nil)

		detail, err := pu.Detail(context.Background(), playlistID, viewerID)

		assert.NoError(t, err)
		assert.Equal(t, 1, detail.PlayCount)
		assert.False(t, detail.IsLiked)
		assert.Equal(t, []*domain.Track{trackB, trackA}, detail.Tracks)
	})

	t.Run("anonymous viewers skip the ledger", func(t *testing.T) {
		playlist := &domain.Playlist{ID: playlistID, TrackIDs: []primitive.ObjectID{}}

		pr, tr, _, ir, pu := newPlaylistFixture()
		pr.On("GetByID", mock.Anything, playlistID).Return(playlist, nil)
		pr.On("Update", mock.Anything, playlist).Return(nil)
		tr.On("GetByIDs", mock.Anything, playlist.TrackIDs).Return([]*domain.Track{}, nil)

		_, err := pu.Detail(context.Background(), playlistID, primitive.NilObjectID)

		assert.NoError(t, err)
		ir.AssertNotCalled(t, "UpsertPlay", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
