package trackcache

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/deejay/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetTrack() {
	track := &models.Track{
		ID: "encoded-track-token",
		Info: models.TrackInfo{
			Identifier: "dQw4w9WgXcQ",
			Title:      "Test Track",
			Author:     "Test Author",
			Length:     212000,
			URI:        "https://example.com/watch?v=dQw4w9WgXcQ",
		},
	}

	err := s.repo.SaveTrack(context.Background(), &SaveTrackInput{
		Identifier: "test track",
		Track:      track,
		ResolvedAt: s.testNow,
	})
	s.Require().NoError(err)

	got, err := s.repo.GetTrack(context.Background(), &GetTrackInput{
		Identifier: "test track",
	})
	s.Require().NoError(err)
	s.Equal(track, got)
}

func (s *RedisRepositoryTestSuite) TestGetTrackNotCached() {
	got, err := s.repo.GetTrack(context.Background(), &GetTrackInput{
		Identifier: "never resolved",
	})
	s.Nil(got)
	s.ErrorIs(err, ErrTrackNotCached)
}

func (s *RedisRepositoryTestSuite) TestSaveTrackWithTTLExpires() {
	track := &models.Track{
		ID:   "encoded-track-token",
		Info: models.TrackInfo{Title: "Short Lived"},
	}

	err := s.repo.SaveTrack(context.Background(), &SaveTrackInput{
		Identifier: "short lived",
		Track:      track,
		ResolvedAt: s.testNow,
		TTL:        time.Minute,
	})
	s.Require().NoError(err)

	// Still cached before the TTL elapses
	got, err := s.repo.GetTrack(context.Background(), &GetTrackInput{
		Identifier: "short lived",
	})
	s.Require().NoError(err)
	s.Equal(track, got)

	// Advance miniredis past the TTL
	s.mr.FastForward(2 * time.Minute)

	got, err = s.repo.GetTrack(context.Background(), &GetTrackInput{
		Identifier: "short lived",
	})
	s.Nil(got)
	s.ErrorIs(err, ErrTrackNotCached)
}

func (s *RedisRepositoryTestSuite) TestSaveTrackValidatesInput() {
	err := s.repo.SaveTrack(context.Background(), nil)
	s.Error(err)

	err = s.repo.SaveTrack(context.Background(), &SaveTrackInput{
		Identifier: "no track",
	})
	s.Error(err)

	err = s.repo.SaveTrack(context.Background(), &SaveTrackInput{
		Track: &models.Track{ID: "token"},
	})
	s.Error(err)
}
