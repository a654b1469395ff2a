package domain_test

import (
	"testing"

	"github.com/fanstage/fanstage/domain"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCuratorLevelForPoints(t *testing.T) {
	cases := []struct {
		points int
		level  domain.CuratorLevel
	}{
		{0, domain.CuratorLevelSeed},
		{99, domain.CuratorLevelSeed},
		{100, domain.CuratorLevelSprout},
		{499, domain.CuratorLevelSprout},
		{500, domain.CuratorLevelFlower},
		{999, domain.CuratorLevelFlower},
		{1000, domain.CuratorLevelTree},
		{4999, domain.CuratorLevelTree},
		{5000, domain.CuratorLevelForest},
		{123456, domain.CuratorLevelForest},
	}

	for _, c := range cases {
		assert.Equal(t, c.level, domain.CuratorLevelForPoints(c.points), "points=%d", c.points)
	}
}

func TestRefreshCuratorLevel(t *testing.T) {
	user := &domain.User{CuratorPoints: 95, CuratorLevel: domain.CuratorLevelSeed}

	user.CuratorPoints += 10
	user.RefreshCuratorLevel()

	assert.Equal(t, domain.CuratorLevelSprout, user.CuratorLevel)
}

func TestIsFollowing(t *testing.T) {
	followed := primitive.NewObjectID()
	other := primitive.NewObjectID()
	user := &domain.User{FollowingArtists: []primitive.ObjectID{followed}}

	assert.True(t, user.IsFollowing(followed))
	assert.False(t, user.IsFollowing(other))
}
