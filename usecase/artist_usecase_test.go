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

func newArtistFixture() (*mocks.ArtistRepository, *mocks.ArtistPostRepository, *mocks.TrackRepository, *mocks.PlaylistRepository, *mocks.UserRepository, domain.ArtistUsecase) {
	ar := new(mocks.ArtistRepository)
	apr := new(mocks.ArtistPostRepository)
	tr := new(mocks.TrackRepository)
	pr := new(mocks.PlaylistRepository)
	ur := new(mocks.UserRepository)
	au := usecase.NewArtistUsecase(ar, apr, tr, pr, ur, 2*time.Second)
	return ar, apr, tr, pr, ur, au
}

func TestListArtists(t *testing.T) {
	ar, _, _, _, _, au := newArtistFixture()
	ar.On("List", mock.Anything, mock.AnythingOfType("domain.ArtistQuery")).
		Return([]*domain.Artist{{Name: "A"}}, int64(41), nil)

	page, err := au.List(context.Background(), domain.ArtistQuery{})

	assert.NoError(t, err)
	assert.Len(t, page.Artists, 1)
	assert.Equal(t, int64(41), page.Total)
	// 41 results over the default page size of 20.
	assert.Equal(t, int64(3), page.TotalPages)
	assert.Equal(t, int64(1), page.CurrentPage)

	query := ar.Calls[0].Arguments.Get(1).(domain.ArtistQuery)
	assert.Equal(t, int64(20), query.Limit)
	assert.Equal(t, int64(1), query.Page)
}

func TestCreateArtistProfile(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("fan accounts are rejected", func(t *testing.T) {
		ar, _, _, _, ur, au := newArtistFixture()
		ur.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID, AccountType: domain.AccountTypeFan}, nil)

		_, err := au.CreateProfile(context.Background(), userID, domain.CreateArtistRequest{Name: "Band"})

		assert.ErrorIs(t, err, domain.ErrNotArtistAccount)
		ar.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("one profile per account", func(t *testing.T) {
		ar, _, _, _, ur, au := newArtistFixture()
		ur.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID, AccountType: domain.AccountTypeArtist}, nil)
		ar.On("GetByUserID", mock.Anything, userID).Return(&domain.Artist{UserID: userID}, nil)

		_, err := au.CreateProfile(context.Background(), userID, domain.CreateArtistRequest{Name: "Band"})

		assert.ErrorIs(t, err, domain.ErrArtistExists)
	})

	t.Run("success", func(t *testing.T) {
		ar, _, _, _, ur, au := newArtistFixture()
		ur.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID, AccountType: domain.AccountTypeArtist}, nil)
		ar.On("GetByUserID", mock.Anything, userID).Return(nil, nil)
		ar.On("Create", mock.Anything, mock.AnythingOfType("*domain.Artist")).Return(nil)

		artist, err := au.CreateProfile(context.Background(), userID, domain.CreateArtistRequest{Name: "Band"})

		assert.NoError(t, err)
		assert.Equal(t, userID, artist.UserID)
		assert.NotNil(t, artist.Genres)
	})
}

func TestCreateArtistPost(t *testing.T) {
	userID := primitive.NewObjectID()
	artistID := primitive.NewObjectID()

	t.Run("only the owner posts", func(t *testing.T) {
		ar, apr, _, _, _, au := newArtistFixture()
		ar.On("GetByID", mock.Anything, artistID).Return(&domain.Artist{ID: artistID, UserID: primitive.NewObjectID()}, nil)

		_, err := au.CreatePost(context.Background(), userID, artistID, domain.CreatePostRequest{Content: "hi"})

		assert.ErrorIs(t, err, domain.ErrForbidden)
		apr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		ar, apr, _, _, _, au := newArtistFixture()
		ar.On("GetByID", mock.Anything, artistID).Return(&domain.Artist{ID: artistID, UserID: userID}, nil)
		apr.On("Create", mock.Anything, mock.AnythingOfType("*domain.ArtistPost")).Return(nil)

		post, err := au.CreatePost(context.Background(), userID, artistID, domain.CreatePostRequest{Content: "new single friday"})

		assert.NoError(t, err)
		assert.Equal(t, artistID, post.ArtistID)
	})
}
