package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

// LogAlerter writes alerts to the log. Used when Slack is not configured.
type LogAlerter struct{}

func (LogAlerter) Alert(_ context.Context, op string, err error) error {
	log.Error().Err(err).Str("op", op).Str("alert", "log").Msg("alert")
	return nil
}

type SlackAlerter struct {
	client  *slack.Client
	channel string
}

// NewSlackAlerter posts to channel with a bot token. Extra options are passed
// to the slack client.
func NewSlackAlerter(token, channel string, opts ...slack.Option) *SlackAlerter {
	return &SlackAlerter{client: slack.New(token, opts...), channel: channel}
}

func (s *SlackAlerter) Alert(ctx context.Context, op string, err error) error {
	text := fmt.Sprintf("[%s] %v", op, err)
	_, _, perr := s.client.PostMessageContext(ctx, s.channel,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAttachments(slack.Attachment{
			Color:  "danger",
			Fields: []slack.AttachmentField{{Title: "level", Value: "error", Short: true}},
		}),
	)
	return perr
}
