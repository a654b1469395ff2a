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

func newUserFixture() (*mocks.UserRepository, *mocks.ArtistRepository, *mocks.InteractionRepository, domain.UserUsecase) {
	ur := new(mocks.UserRepository)
	ar := new(mocks.ArtistRepository)
	tr := new(mocks.TrackRepository)
	pr := new(mocks.PlaylistRepository)
	ir := new(mocks.InteractionRepository)
	uu := usecase.NewUserUsecase(ur, ar, tr, pr, ir, 2*time.Second)
	return ur, ar, ir, uu
}

func TestUpdateUserProfile(t *testing.T) {
	userID := primitive.NewObjectID()
	strangerID := primitive.NewObjectID()

	t.Run("self edit", func(t *testing.T) {
		user := &domain.User{ID: userID, DisplayName: "Old", ProfileImage: "old.png"}

		ur, _, _, uu := newUserFixture()
		ur.On("GetByID", mock.Anything, userID).Return(user, nil)
		ur.On("Update", mock.Anything, user).Return(nil)

		updated, err := uu.UpdateProfile(context.Background(), userID, userID, domain.UpdateProfileRequest{DisplayName: "New"})

		assert.NoError(t, err)
		assert.Equal(t, "New", updated.DisplayName)
		// Blank fields keep their current values.
		assert.Equal(t, "old.png", updated.ProfileImage)
	})

	t.Run("editing someone else is forbidden", func(t *testing.T) {
		ur, _, _, uu := newUserFixture()

		_, err := uu.UpdateProfile(context.Background(), strangerID, userID, domain.UpdateProfileRequest{DisplayName: "New"})

		assert.ErrorIs(t, err, domain.ErrForbidden)
		ur.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestToggleFollow(t *testing.T) {
	userID := primitive.NewObjectID()
	artistID := primitive.NewObjectID()

	t.Run("follow logs the fact", func(t *testing.T) {
		user := &domain.User{ID: userID, FollowingArtists: []primitive.ObjectID{}}

		ur, ar, ir, uu := newUserFixture()
		ur.On("GetByID", mock.Anything, userID).Return(user, nil)
		ar.On("GetByID", mock.Anything, artistID).Return(&domain.Artist{ID: artistID}, nil)
		ur.On("Update", mock.Anything, user).Return(nil)
		ir.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interaction")).Return(nil)

		result, err := uu.ToggleFollow(context.Background(), userID, userID, artistID)

		assert.NoError(t, err)
		assert.True(t, result.Following)
		assert.Contains(t, result.FollowingArtists, artistID)
		ir.AssertExpectations(t)
	})

	t.Run("second toggle unfollows", func(t *testing.T) {
		user := &domain.User{ID: userID, FollowingArtists: []primitive.ObjectID{artistID}}

		ur, ar, ir, uu := newUserFixture()
		ur.On("GetByID", mock.Anything, userID).Return(user, nil)
		ar.On("GetByID", mock.Anything, artistID).Return(&domain.Artist{ID: artistID}, nil)
		ur.On("Update", mock.Anything, user).Return(nil)

		result, err := uu.ToggleFollow(context.Background(), userID, userID, artistID)

		assert.NoError(t, err)
		assert.False(t, result.Following)
		assert.NotContains(t, result.FollowingArtists, artistID)
		ir.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown artist", func(t *testing.T) {
		user := &domain.User{ID: userID, FollowingArtists: []primitive.ObjectID{}}

		ur, ar, _, uu := newUserFixture()
		ur.On("GetByID", mock.Anything, userID).Return(user, nil)
		ar.On("GetByID", mock.Anything, artistID).Return(nil, domain.ErrNotFound)

		_, err := uu.ToggleFollow(context.Background(), userID, userID, artistID)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		ur.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("acting for another user is forbidden", func(t *testing.T) {
		_, _, _, uu := newUserFixture()

		_, err := uu.ToggleFollow(context.Background(), primitive.NewObjectID(), userID, artistID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
