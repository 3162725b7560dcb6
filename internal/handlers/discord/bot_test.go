package discord

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/KirkDiggler/deejay/internal/models"
	"github.com/KirkDiggler/deejay/internal/resolver"
	"github.com/KirkDiggler/deejay/internal/services/player"
	playerMocks "github.com/KirkDiggler/deejay/internal/services/player/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type recordingReplier struct {
	messages []string
	channels []string
	err      error
}

func (r *recordingReplier) SendMessage(_ context.Context, channelID, content string) error {
	r.channels = append(r.channels, channelID)
	r.messages = append(r.messages, content)
	return r.err
}

type BotTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	mockService *playerMocks.MockService
	replier     *recordingReplier
	bot         *Bot

	ctx context.Context
}

func (s *BotTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = playerMocks.NewMockService(s.ctrl)
	s.replier = &recordingReplier{}

	s.bot = &Bot{
		prefix:        "!",
		playerService: s.mockService,
		replier:       s.replier,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		lookupVoiceChannel: func(guildID, userID string) (string, error) {
			return "voice-1", nil
		},
	}

	s.ctx = context.Background()
}

func (s *BotTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BotTestSuite) message(content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			GuildID:   "guild-1",
			ChannelID: "channel-1",
			Content:   content,
			Author:    &discordgo.User{ID: "user-1"},
		},
	}
}

func (s *BotTestSuite) TestParseCommand() {
	command, args, ok := parseCommand("!", "!play rick astley")
	s.True(ok)
	s.Equal("play", command)
	s.Equal([]string{"rick", "astley"}, args)

	command, args, ok = parseCommand("!", "!PAUSE")
	s.True(ok)
	s.Equal("pause", command)
	s.Empty(args)

	_, _, ok = parseCommand("!", "just chatting")
	s.False(ok)

	_, _, ok = parseCommand("!", "!")
	s.False(ok)

	_, _, ok = parseCommand("!", "!   ")
	s.False(ok)
}

func (s *BotTestSuite) TestPlayMissingArgument() {
	err := s.bot.handlePlay(s.ctx, s.message("!play"), nil)
	s.NoError(err)

	s.Equal([]string{"Pass track as an argument"}, s.replier.messages)
}

func (s *BotTestSuite) TestPlayUserNotInVoice() {
	s.bot.lookupVoiceChannel = func(guildID, userID string) (string, error) {
		return "", nil
	}

	err := s.bot.handlePlay(s.ctx, s.message("!play test"), []string{"test"})
	s.NoError(err)

	s.Equal([]string{"You need to join a voice channel first"}, s.replier.messages)
}

func (s *BotTestSuite) TestPlaySuccess() {
	s.mockService.EXPECT().
		Play(gomock.Any(), &player.PlayInput{
			GuildID:    "guild-1",
			ChannelID:  "voice-1",
			Identifier: "never gonna give you up",
		}).
		Return(&player.PlayOutput{
			Track: &models.Track{
				ID: "token",
				Info: models.TrackInfo{
					Title:  "Never Gonna Give You Up",
					Author: "Rick Astley",
				},
			},
		}, nil)

	err := s.bot.handlePlay(s.ctx, s.message("!play never gonna give you up"),
		[]string{"never", "gonna", "give", "you", "up"})
	s.NoError(err)

	s.Equal([]string{"Playing **Never Gonna Give You Up** by **Rick Astley**"}, s.replier.messages)
	s.Equal([]string{"channel-1"}, s.replier.channels)
}

func (s *BotTestSuite) TestPlayNoTracksFound() {
	s.mockService.EXPECT().
		Play(gomock.Any(), gomock.Any()).
		Return(nil, resolver.ErrNoTracksFound)

	err := s.bot.handlePlay(s.ctx, s.message("!play nothing"), []string{"nothing"})
	s.NoError(err)

	s.Equal([]string{"No tracks found"}, s.replier.messages)
}

func (s *BotTestSuite) TestPlayResolutionFailed() {
	resErr := &resolver.ResolutionFailedError{
		Identifier: "test",
		Err:        errors.New("connection refused"),
	}

	s.mockService.EXPECT().
		Play(gomock.Any(), gomock.Any()).
		Return(nil, resErr)

	err := s.bot.handlePlay(s.ctx, s.message("!play test"), []string{"test"})
	s.ErrorAs(err, new(*resolver.ResolutionFailedError))

	s.Equal([]string{"Track lookup failed, try again later"}, s.replier.messages)
}

func (s *BotTestSuite) TestPlayInternalError() {
	s.mockService.EXPECT().
		Play(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("node unavailable"))

	err := s.bot.handlePlay(s.ctx, s.message("!play test"), []string{"test"})
	s.EqualError(err, "node unavailable")

	s.Equal([]string{"Something went wrong"}, s.replier.messages)
}

func (s *BotTestSuite) TestEnqueueSuccess() {
	s.mockService.EXPECT().
		Enqueue(gomock.Any(), &player.EnqueueInput{
			GuildID:    "guild-1",
			ChannelID:  "voice-1",
			Identifier: "second song",
		}).
		Return(&player.EnqueueOutput{
			Track: &models.Track{
				Info: models.TrackInfo{Title: "Second Song", Author: "Someone"},
			},
		}, nil)

	err := s.bot.handleEnqueue(s.ctx, s.message("!add second song"), []string{"second", "song"})
	s.NoError(err)

	s.Equal([]string{"Added **Second Song** by **Someone** to the queue"}, s.replier.messages)
}

func (s *BotTestSuite) TestEnqueueUserNotInVoice() {
	s.bot.lookupVoiceChannel = func(guildID, userID string) (string, error) {
		return "", nil
	}

	err := s.bot.handleEnqueue(s.ctx, s.message("!add test"), []string{"test"})
	s.NoError(err)

	s.Equal([]string{"You need to join a voice channel first"}, s.replier.messages)
}

func (s *BotTestSuite) TestStopIsSilentOnSuccess() {
	s.mockService.EXPECT().
		Stop(gomock.Any(), &player.StopInput{GuildID: "guild-1"}).
		Return(&player.StopOutput{}, nil)

	err := s.bot.handleStop(s.ctx, s.message("!stop"))
	s.NoError(err)

	s.Empty(s.replier.messages)
}

func (s *BotTestSuite) TestVolumeMissingArgument() {
	err := s.bot.handleVolume(s.ctx, s.message("!volume"), nil)
	s.NoError(err)

	s.Equal([]string{"Pass volume value as an argument"}, s.replier.messages)
}

func (s *BotTestSuite) TestVolumeNotANumber() {
	err := s.bot.handleVolume(s.ctx, s.message("!volume loud"), []string{"loud"})
	s.NoError(err)

	s.Require().Len(s.replier.messages, 1)
	s.Contains(s.replier.messages[0], "Volume value is invalid")
}

func (s *BotTestSuite) TestVolumeOutOfBounds() {
	s.mockService.EXPECT().
		SetVolume(gomock.Any(), &player.SetVolumeInput{GuildID: "guild-1", Volume: 9000}).
		Return(nil, &player.OutOfBoundsError{
			Value: 9000,
			Min:   player.MinVolume,
			Max:   player.MaxVolume,
		})

	err := s.bot.handleVolume(s.ctx, s.message("!volume 9000"), []string{"9000"})
	s.NoError(err)

	s.Require().Len(s.replier.messages, 1)
	s.Contains(s.replier.messages[0], "Invalid volume value")
}

func (s *BotTestSuite) TestVolumeSuccess() {
	s.mockService.EXPECT().
		SetVolume(gomock.Any(), &player.SetVolumeInput{GuildID: "guild-1", Volume: 150}).
		Return(&player.SetVolumeOutput{Volume: 150}, nil)

	err := s.bot.handleVolume(s.ctx, s.message("!volume 150"), []string{"150"})
	s.NoError(err)

	s.Equal([]string{"Volume was set to 150"}, s.replier.messages)
}

func (s *BotTestSuite) TestSeekMissingArgument() {
	err := s.bot.handleSeek(s.ctx, s.message("!seek"), nil)
	s.NoError(err)

	s.Equal([]string{"Pass seek position in milliseconds as an argument"}, s.replier.messages)
}

func (s *BotTestSuite) TestSeekNotANumber() {
	err := s.bot.handleSeek(s.ctx, s.message("!seek later"), []string{"later"})
	s.NoError(err)

	s.Require().Len(s.replier.messages, 1)
	s.Contains(s.replier.messages[0], "Position is invalid")
}

func (s *BotTestSuite) TestSeekSuccess() {
	s.mockService.EXPECT().
		Seek(gomock.Any(), &player.SeekInput{GuildID: "guild-1", PositionMillis: 30000}).
		Return(&player.SeekOutput{PositionMillis: 30000}, nil)

	err := s.bot.handleSeek(s.ctx, s.message("!seek 30000"), []string{"30000"})
	s.NoError(err)

	s.Equal([]string{"Position was set to 30000ms"}, s.replier.messages)
}

func (s *BotTestSuite) TestPauseReplies() {
	s.mockService.EXPECT().
		TogglePause(gomock.Any(), &player.TogglePauseInput{GuildID: "guild-1"}).
		Return(&player.TogglePauseOutput{Paused: true}, nil)

	err := s.bot.handlePause(s.ctx, s.message("!pause"))
	s.NoError(err)
	s.Equal([]string{"Paused"}, s.replier.messages)

	s.replier.messages = nil

	s.mockService.EXPECT().
		TogglePause(gomock.Any(), &player.TogglePauseInput{GuildID: "guild-1"}).
		Return(&player.TogglePauseOutput{Paused: false}, nil)

	err = s.bot.handlePause(s.ctx, s.message("!pause"))
	s.NoError(err)
	s.Equal([]string{"Unpaused"}, s.replier.messages)
}

func (s *BotTestSuite) TestPing() {
	err := s.bot.handlePing(s.ctx, s.message("!ping"))
	s.NoError(err)

	s.Equal([]string{"Pong!"}, s.replier.messages)
}

func TestBotTestSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}
