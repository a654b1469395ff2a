package domain_test

import (
	"testing"

	"github.com/fanstage/fanstage/domain"
	"github.com/stretchr/testify/assert"
)

func TestExposureScore(t *testing.T) {
	assert.Equal(t, 0, domain.ExposureScore(0, 0, 0))
	assert.Equal(t, 2, domain.ExposureScore(1, 0, 0))
	assert.Equal(t, 1, domain.ExposureScore(0, 1, 0))
	assert.Equal(t, 3, domain.ExposureScore(0, 0, 1))
	// 3 likes, 10 plays, 1 share.
	assert.Equal(t, 19, domain.ExposureScore(3, 10, 1))
}

func TestRefreshExposureScore(t *testing.T) {
	p := &domain.Playlist{LikeCount: 3, PlayCount: 10, ShareCount: 1}
	p.RefreshExposureScore()
	assert.Equal(t, 19, p.ExposureScore)

	p.ShareCount++
	p.RefreshExposureScore()
	assert.Equal(t, 22, p.ExposureScore)
}
