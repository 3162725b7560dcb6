package sessions

import (
	"fmt"
	"sync"
	"testing"

	"github.com/KirkDiggler/deejay/internal/models"
	"github.com/stretchr/testify/suite"
)

type DirectoryTestSuite struct {
	suite.Suite
	directory *Directory
}

func (s *DirectoryTestSuite) SetupTest() {
	s.directory = New()
}

func TestDirectoryTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryTestSuite))
}

func (s *DirectoryTestSuite) TestQueueIsFIFO() {
	tracks := []models.Track{
		{ID: "token-1", Info: models.TrackInfo{Title: "first"}},
		{ID: "token-2", Info: models.TrackInfo{Title: "second"}},
		{ID: "token-3", Info: models.TrackInfo{Title: "third"}},
	}

	s.directory.WithSession("guild-1", func(sess *Session) {
		sess.Queue().Enqueue(tracks...)
	})

	var dequeued []models.Track
	s.directory.WithSession("guild-1", func(sess *Session) {
		for {
			track, ok := sess.Queue().Dequeue()
			if !ok {
				break
			}
			dequeued = append(dequeued, track)
		}
	})

	s.Equal(tracks, dequeued)
}

func (s *DirectoryTestSuite) TestDequeueEmptyQueue() {
	s.directory.WithSession("guild-1", func(sess *Session) {
		track, ok := sess.Queue().Dequeue()
		s.False(ok)
		s.Empty(track.ID)
	})
}

func (s *DirectoryTestSuite) TestReplyChannelAbsentByDefault() {
	channelID, ok := s.directory.ReplyChannel("guild-1")
	s.False(ok)
	s.Empty(channelID)
}

func (s *DirectoryTestSuite) TestAssociateReplyChannelOverwrites() {
	s.directory.AssociateReplyChannel("guild-1", "channel-1")
	s.directory.AssociateReplyChannel("guild-1", "channel-2")

	channelID, ok := s.directory.ReplyChannel("guild-1")
	s.True(ok)
	s.Equal("channel-2", channelID)
}

func (s *DirectoryTestSuite) TestConcurrentFirstAccessConverges() {
	// Hammer a fresh key from many goroutines; every enqueue must land in the
	// same session instance.
	const workers = 32

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.directory.WithSession("guild-fresh", func(sess *Session) {
				sess.Queue().Enqueue(models.Track{ID: fmt.Sprintf("token-%d", n)})
			})
		}(i)
	}
	wg.Wait()

	s.directory.WithSession("guild-fresh", func(sess *Session) {
		s.Equal(workers, sess.Queue().Len())
	})
}

func (s *DirectoryTestSuite) TestGuildsAreIsolated() {
	const perGuild = 50

	var wg sync.WaitGroup
	for _, guildID := range []string{"guild-a", "guild-b"} {
		wg.Add(1)
		go func(guildID string) {
			defer wg.Done()
			for i := 0; i < perGuild; i++ {
				s.directory.WithSession(guildID, func(sess *Session) {
					sess.Queue().Enqueue(models.Track{
						ID: fmt.Sprintf("%s-token-%d", guildID, i),
					})
				})
			}
		}(guildID)
	}
	wg.Wait()

	for _, guildID := range []string{"guild-a", "guild-b"} {
		s.directory.WithSession(guildID, func(sess *Session) {
			s.Equal(perGuild, sess.Queue().Len())

			// Every entry belongs to this guild and arrives in enqueue order.
			for i := 0; i < perGuild; i++ {
				track, ok := sess.Queue().Dequeue()
				s.Require().True(ok)
				s.Equal(fmt.Sprintf("%s-token-%d", guildID, i), track.ID)
			}
		})
	}
}
