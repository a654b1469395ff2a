package usecase_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fanstage/fanstage/domain"
	"github.com/fanstage/fanstage/domain/mocks"
	"github.com/fanstage/fanstage/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTrackFixture(uploadDir string) (*mocks.TrackRepository, *mocks.ArtistRepository, *mocks.InteractionRepository, domain.TrackUsecase) {
	tr := new(mocks.TrackRepository)
	ar := new(mocks.ArtistRepository)
	ir := new(mocks.InteractionRepository)
	tu := usecase.NewTrackUsecase(tr, ar, ir, uploadDir, 2*time.Second)
	return tr, ar, ir, tu
}

// mp3Bytes is just enough of a frame header for content sniffing.
func mp3Bytes() []byte {
	data := make([]byte, 512)
	copy(data, []byte("ID3"))
	return data
}

func TestTrackDetail(t *testing.T) {
	trackID := primitive.NewObjectID()
	viewerID := primitive.NewObjectID()

	t.Run("counts the play", func(t *testing.T) {
		tr, _, ir, tu := newTrackFixture(t.TempDir())
		tr.On("GetByID", mock.Anything, trackID).Return(&domain.Track{ID: trackID, PlayCount: 7}, nil)
		tr.On("IncrementPlayCount", mock.Anything, trackID).Return(nil)
		ir.On("UpsertPlay", mock.Anything, viewerID, trackID, domain.TargetTrack).Return(nil)
		ir.On("GetOne", mock.Anything, viewerID, domain.InteractionLikeTrack, trackID).
			Return(&domain.Interaction{ID: primitive.NewObjectID()}, nil)

		detail, err := tu.Detail(context.Background(), trackID, viewerID)

		assert.NoError(t, err)
		assert.Equal(t, 8, detail.PlayCount)
		assert.True(t, detail.IsLiked)
	})

	t.Run("anonymous play skips the ledger", func(t *testing.T) {
		tr, _, ir, tu := newTrackFixture(t.TempDir())
		tr.On("GetByID", mock.Anything, trackID).Return(&domain.Track{ID: trackID}, nil)
		tr.On("IncrementPlayCount", mock.Anything, trackID).Return(nil)

		detail, err := tu.Detail(context.Background(), trackID, primitive.NilObjectID)

		assert.NoError(t, err)
		assert.False(t, detail.IsLiked)
		ir.AssertNotCalled(t, "UpsertPlay", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCreateTrack(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("requires an artist profile", func(t *testing.T) {
		tr, ar, _, tu := newTrackFixture(t.TempDir())
		ar.On("GetByUserID", mock.Anything, userID).Return(nil, nil)

		_, err := tu.Create(context.Background(), userID, domain.CreateTrackRequest{Title: "Song"})

		assert.ErrorIs(t, err, domain.ErrNotArtist)
		tr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("links the track to the artist", func(t *testing.T) {
		artist := &domain.Artist{ID: primitive.NewObjectID(), UserID: userID}

		tr, ar, _, tu := newTrackFixture(t.TempDir())
		ar.On("GetByUserID", mock.Anything, userID).Return(artist, nil)
		tr.On("Create", mock.Anything, mock.AnythingOfType("*domain.Track")).Return(nil)

		track, err := tu.Create(context.Background(), userID, domain.CreateTrackRequest{
			Title:    "Song",
			AudioURL: "https://cdn.example.com/song.mp3",
			Genre:    "indie",
			Duration: 214,
		})

		assert.NoError(t, err)
		assert.Equal(t, artist.ID, track.ArtistID)
	})
}

func TestUploadTrack(t *testing.T) {
	userID := primitive.NewObjectID()
	artist := &domain.Artist{ID: primitive.NewObjectID(), UserID: userID}

	t.Run("stores the file and creates the track", func(t *testing.T) {
		dir := t.TempDir()
		tr, ar, _, tu := newTrackFixture(dir)
		ar.On("GetByUserID", mock.Anything, userID).Return(artist, nil)
		tr.On("Create", mock.Anything, mock.AnythingOfType("*domain.Track")).Return(nil)

		track, err := tu.Upload(context.Background(), userID, domain.UploadTrackRequest{
			Title:    "Demo",
			Genre:    "indie",
			Filename: "demo.mp3",
		}, bytes.NewReader(mp3Bytes()))

		require.NoError(t, err)
		assert.Equal(t, "Demo", track.Title)
		assert.Contains(t, track.AudioURL, "/uploads/")

		stored, err := filepath.Glob(filepath.Join(dir, "*.mp3"))
		require.NoError(t, err)
		assert.Len(t, stored, 1)
	})

	t.Run("rejects non-audio payloads", func(t *testing.T) {
		tr, ar, _, tu := newTrackFixture(t.TempDir())
		ar.On("GetByUserID", mock.Anything, userID).Return(artist, nil)

		_, err := tu.Upload(context.Background(), userID, domain.UploadTrackRequest{
			Filename: "notes.txt",
		}, bytes.NewReader([]byte("plain text, not audio")))

		assert.ErrorIs(t, err, domain.ErrUnsupportedAudio)
		tr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("non-artists cannot upload", func(t *testing.T) {
		_, ar, _, tu := newTrackFixture(t.TempDir())
		ar.On("GetByUserID", mock.Anything, userID).Return(nil, nil)

		_, err := tu.Upload(context.Background(), userID, domain.UploadTrackRequest{}, bytes.NewReader(mp3Bytes()))

		assert.ErrorIs(t, err, domain.ErrNotArtist)
	})
}
