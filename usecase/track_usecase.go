package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dhowden/tag"
	"github.com/fanstage/fanstage/domain"
	"github.com/h2non/filetype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type trackUsecase struct {
	trackRepository       domain.TrackRepository
	artistRepository      domain.ArtistRepository
	interactionRepository domain.InteractionRepository
	uploadDir             string
	contextTimeout        time.Duration
}

func NewTrackUsecase(
	trackRepository domain.TrackRepository,
	artistRepository domain.ArtistRepository,
	interactionRepository domain.InteractionRepository,
	uploadDir string,
	timeout time.Duration,
) domain.TrackUsecase {
	return &trackUsecase{
		trackRepository:       trackRepository,
		artistRepository:      artistRepository,
		interactionRepository: interactionRepository,
		uploadDir:             uploadDir,
		contextTimeout:        timeout,
	}
}

func (tu *trackUsecase) List(ctx context.Context, query domain.TrackQuery) (*domain.TrackPage, error) {
	ctx, cancel := context.WithTimeout(ctx, tu.contextTimeout)
	defer cancel()

	if query.Limit <= 0 {
		query.Limit = defaultPageLimit
	}
	if query.Page <= 0 {
		query.Page = 1
	}

	tracks, total, err := tu.trackRepository.List(ctx, query)
	if err != nil {
		return nil, err
	}
	if tracks == nil {
		tracks = []*domain.Track{}
	}

	return &domain.TrackPage{
		Tracks:      tracks,
		TotalPages:  totalPages(total, query.Limit),
		CurrentPage: query.Page,
		Total:       total,
	}, nil
}

func (tu *trackUsecase) Detail(ctx context.Context, id, viewerID primitive.ObjectID) (*domain.TrackDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, tu.contextTimeout)
	defer cancel()

	track, err := tu.trackRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tu.trackRepository.IncrementPlayCount(ctx, track.ID); err != nil {
		return nil, err
	}
	track.PlayCount++

	isLiked := false
	if !viewerID.IsZero() {
		if err := tu.interactionRepository.UpsertPlay(ctx, viewerID, track.ID, domain.TargetTrack); err != nil {
			log.Printf("play interaction log failed: %v", err)
		}
		liked, err := tu.interactionRepository.GetOne(ctx, viewerID, domain.InteractionLikeTrack, track.ID)
		if err != nil {
			return nil, err
		}
		isLiked = liked != nil
	}

	return &domain.TrackDetail{Track: track, IsLiked: isLiked}, nil
}

func (tu *trackUsecase) Create(ctx context.Context, userID primitive.ObjectID, req domain.CreateTrackRequest) (*domain.Track, error) {
	ctx, cancel := context.WithTimeout(ctx, tu.contextTimeout)
	defer cancel()

	artist, err := tu.artistRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, domain.ErrNotArtist
	}

	track := &domain.Track{
		ArtistID:   artist.ID,
		Title:      req.Title,
		AudioURL:   req.AudioURL,
		CoverImage: req.CoverImage,
		Genre:      req.Genre,
		Duration:   req.Duration,
		Lyrics:     req.Lyrics,
	}
	if err := tu.trackRepository.Create(ctx, track); err != nil {
		return nil, err
	}
	return track, nil
}

// Upload stores a raw audio file under the upload directory and creates the
// track. Embedded tags fill in title and genre when the form left them blank.
func (tu *trackUsecase) Upload(ctx context.Context, userID primitive.ObjectID, req domain.UploadTrackRequest, file io.Reader) (*domain.Track, error) {
	ctx, cancel := context.WithTimeout(ctx, tu.contextTimeout)
	defer cancel()

	artist, err := tu.artistRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, domain.ErrNotArtist
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	kind, _ := filetype.Match(data)
	if kind == filetype.Unknown || kind.MIME.Type != "audio" {
		return nil, domain.ErrUnsupportedAudio
	}

	title := req.Title
	genre := req.Genre
	if meta, err := tag.ReadFrom(bytes.NewReader(data)); err == nil {
		if title == "" {
			title = meta.Title()
		}
		if genre == "" {
			genre = meta.Genre()
		}
	}
	if title == "" {
		title = req.Filename
	}

	name := primitive.NewObjectID().Hex() + "." + kind.Extension
	if err := os.MkdirAll(tu.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(tu.uploadDir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	track := &domain.Track{
		ArtistID:   artist.ID,
		Title:      title,
		AudioURL:   "/uploads/" + name,
		CoverImage: req.CoverImage,
		Genre:      genre,
		Duration:   req.Duration,
		Lyrics:     req.Lyrics,
	}
	if err := tu.trackRepository.Create(ctx, track); err != nil {
		return nil, err
	}
	return track, nil
}
