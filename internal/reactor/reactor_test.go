package reactor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/KirkDiggler/deejay/internal/lavalink"
	"github.com/KirkDiggler/deejay/internal/models"
	"github.com/KirkDiggler/deejay/internal/reactor/mocks"
	"github.com/KirkDiggler/deejay/internal/services/player"
	playerMocks "github.com/KirkDiggler/deejay/internal/services/player/mocks"
	"github.com/KirkDiggler/deejay/internal/sessions"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReactorTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockService   *playerMocks.MockService
	mockMessenger *mocks.MockMessenger
	directory     *sessions.Directory
	reactor       *Reactor
	ctx           context.Context

	// Test data
	testGuildID   string
	testChannelID string
	testTrack     *models.Track
}

func (s *ReactorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = playerMocks.NewMockService(s.mockCtrl)
	s.mockMessenger = mocks.NewMockMessenger(s.mockCtrl)
	s.directory = sessions.New()

	s.ctx = context.Background()

	s.testGuildID = "test-guild-id"
	s.testChannelID = "test-reply-channel-id"
	s.testTrack = &models.Track{
		ID: "test-track-token",
		Info: models.TrackInfo{
			Title:  "Test Track",
			Author: "Test Author",
		},
	}

	reactor, err := New(&Config{
		PlayerService: s.mockService,
		Sessions:      s.directory,
		Messenger:     s.mockMessenger,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Require().NoError(err)
	s.reactor = reactor
}

func (s *ReactorTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReactorTestSuite(t *testing.T) {
	suite.Run(t, new(ReactorTestSuite))
}

func (s *ReactorTestSuite) TestTrackEndAdvancesAndAnnounces() {
	s.directory.AssociateReplyChannel(s.testGuildID, s.testChannelID)

	s.mockService.EXPECT().
		AdvanceQueue(s.ctx, &player.AdvanceQueueInput{GuildID: s.testGuildID}).
		Return(&player.AdvanceQueueOutput{Track: s.testTrack}, nil)
	s.mockMessenger.EXPECT().
		SendMessage(s.ctx, s.testChannelID, "Playing **Test Track** by **Test Author**").
		Return(nil)

	s.reactor.Handle(s.ctx, lavalink.Event{
		Type:    lavalink.EventTrackEnd,
		GuildID: s.testGuildID,
		Reason:  "FINISHED",
	})
}

func (s *ReactorTestSuite) TestTrackEndEmptyQueue() {
	s.directory.AssociateReplyChannel(s.testGuildID, s.testChannelID)

	s.mockService.EXPECT().
		AdvanceQueue(s.ctx, gomock.Any()).
		Return(&player.AdvanceQueueOutput{}, nil)
	s.mockMessenger.EXPECT().
		SendMessage(s.ctx, s.testChannelID, "The queue is empty").
		Return(nil)

	s.reactor.Handle(s.ctx, lavalink.Event{
		Type:    lavalink.EventTrackEnd,
		GuildID: s.testGuildID,
	})
}

func (s *ReactorTestSuite) TestTrackEndNoReplyChannel() {
	// The queue still advances; only the status update is dropped.
	s.mockService.EXPECT().
		AdvanceQueue(s.ctx, gomock.Any()).
		Return(&player.AdvanceQueueOutput{Track: s.testTrack}, nil)

	s.reactor.Handle(s.ctx, lavalink.Event{
		Type:    lavalink.EventTrackEnd,
		GuildID: s.testGuildID,
	})
}

func (s *ReactorTestSuite) TestTrackEndAdvanceFailure() {
	s.directory.AssociateReplyChannel(s.testGuildID, s.testChannelID)

	// No status update is posted when the advance itself failed.
	s.mockService.EXPECT().
		AdvanceQueue(s.ctx, gomock.Any()).
		Return(nil, errors.New("node unavailable"))

	s.reactor.Handle(s.ctx, lavalink.Event{
		Type:    lavalink.EventTrackEnd,
		GuildID: s.testGuildID,
	})
}

func (s *ReactorTestSuite) TestTrackStartAnnounces() {
	s.directory.AssociateReplyChannel(s.testGuildID, s.testChannelID)

	s.mockMessenger.EXPECT().
		SendMessage(s.ctx, s.testChannelID, "Now playing").
		Return(nil)

	s.reactor.Handle(s.ctx, lavalink.Event{
		Type:    lavalink.EventTrackStart,
		GuildID: s.testGuildID,
	})
}

func (s *ReactorTestSuite) TestTrackStartNoReplyChannel() {
	// Logged and dropped; the messenger is never called.
	s.reactor.Handle(s.ctx, lavalink.Event{
		Type:    lavalink.EventTrackStart,
		GuildID: s.testGuildID,
	})
}

func (s *ReactorTestSuite) TestSendFailureIsSwallowed() {
	s.directory.AssociateReplyChannel(s.testGuildID, s.testChannelID)

	s.mockMessenger.EXPECT().
		SendMessage(s.ctx, s.testChannelID, "Now playing").
		Return(errors.New("channel deleted"))

	s.reactor.Handle(s.ctx, lavalink.Event{
		Type:    lavalink.EventTrackStart,
		GuildID: s.testGuildID,
	})
}

func (s *ReactorTestSuite) TestRunConsumesUntilClosed() {
	s.directory.AssociateReplyChannel(s.testGuildID, s.testChannelID)

	posted := make(chan struct{}, 2)
	s.mockMessenger.EXPECT().
		SendMessage(gomock.Any(), s.testChannelID, "Now playing").
		DoAndReturn(func(context.Context, string, string) error {
			posted <- struct{}{}
			return nil
		}).
		Times(2)

	events := make(chan lavalink.Event, 2)
	events <- lavalink.Event{Type: lavalink.EventTrackStart, GuildID: s.testGuildID}
	events <- lavalink.Event{Type: lavalink.EventTrackStart, GuildID: s.testGuildID}
	close(events)

	s.reactor.Run(s.ctx, events)

	for i := 0; i < 2; i++ {
		select {
		case <-posted:
		case <-time.After(time.Second):
			s.FailNow("notification was never posted")
		}
	}
}

func (s *ReactorTestSuite) TestSlowGuildDoesNotStallOthers() {
	s.directory.AssociateReplyChannel("guild-slow", "channel-slow")
	s.directory.AssociateReplyChannel("guild-fast", "channel-fast")

	release := make(chan struct{})
	s.mockService.EXPECT().
		AdvanceQueue(gomock.Any(), &player.AdvanceQueueInput{GuildID: "guild-slow"}).
		DoAndReturn(func(context.Context, *player.AdvanceQueueInput) (*player.AdvanceQueueOutput, error) {
			<-release
			return &player.AdvanceQueueOutput{}, nil
		})
	s.mockService.EXPECT().
		AdvanceQueue(gomock.Any(), &player.AdvanceQueueInput{GuildID: "guild-fast"}).
		Return(&player.AdvanceQueueOutput{}, nil)

	posted := make(chan string, 2)
	s.mockMessenger.EXPECT().
		SendMessage(gomock.Any(), gomock.Any(), "The queue is empty").
		DoAndReturn(func(_ context.Context, channelID, _ string) error {
			posted <- channelID
			return nil
		}).
		Times(2)

	// The slow guild's event arrives first; its hung advance must not hold
	// up the fast guild's notification.
	events := make(chan lavalink.Event, 2)
	events <- lavalink.Event{Type: lavalink.EventTrackEnd, GuildID: "guild-slow"}
	events <- lavalink.Event{Type: lavalink.EventTrackEnd, GuildID: "guild-fast"}
	close(events)

	s.reactor.Run(s.ctx, events)

	select {
	case channelID := <-posted:
		s.Equal("channel-fast", channelID)
	case <-time.After(time.Second):
		s.FailNow("fast guild's notification was stalled")
	}

	close(release)

	select {
	case channelID := <-posted:
		s.Equal("channel-slow", channelID)
	case <-time.After(time.Second):
		s.FailNow("slow guild's notification never arrived")
	}
}
