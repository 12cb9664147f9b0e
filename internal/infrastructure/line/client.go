package line

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"locationreminder/internal/pkg/config"
	appErrors "locationreminder/internal/pkg/errors"
	"locationreminder/internal/pkg/logger"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Client wraps the linebot.Client.
type Client struct {
	bot *linebot.Client
	log logger.Logger
}

// NewClient creates a LINE Bot client from the channel credentials.
// opts are passed to linebot.New, e.g. linebot.WithEndpointBase in tests.
func NewClient(cfg config.LineConfig, log logger.Logger, opts ...linebot.ClientOption) (*Client, error) {
	if cfg.ChannelSecret == "" || cfg.ChannelToken == "" {
		return nil, errors.New("line channel secret and channel token must be set")
	}

	bot, err := linebot.New(cfg.ChannelSecret, cfg.ChannelToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE Bot client: %w", err)
	}
	log.Info("Successfully created LINE Bot client.")
	return &Client{
		bot: bot,
		log: log,
	}, nil
}

// PushText sends a text message to a user using the PushMessage API.
func (c *Client) PushText(ctx context.Context, to string, text string) error {
	if _, err := c.bot.PushMessage(to, linebot.NewTextMessage(text)).WithContext(ctx).Do(); err != nil {
		return fmt.Errorf("%w: push to %s: %v", appErrors.ErrLineAPI, to, err)
	}
	c.log.Debug("Successfully sent push message.")
	return nil
}

// ReplyText answers a webhook event using the ReplyMessage API.
func (c *Client) ReplyText(ctx context.Context, replyToken string, texts ...string) error {
	messages := make([]linebot.SendingMessage, 0, len(texts))
	for _, text := range texts {
		messages = append(messages, linebot.NewTextMessage(text))
	}
	if _, err := c.bot.ReplyMessage(replyToken, messages...).WithContext(ctx).Do(); err != nil {
		return fmt.Errorf("%w: reply: %v", appErrors.ErrLineAPI, err)
	}
	c.log.Debug("Successfully sent reply message.")
	return nil
}

// ParseRequest verifies the signature and decodes incoming webhook events.
func (c *Client) ParseRequest(r *http.Request) ([]*linebot.Event, error) {
	return c.bot.ParseRequest(r)
}
