package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"locationreminder/internal/application/service"
	"locationreminder/internal/domain/repository"
	"locationreminder/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Messenger is the part of the LINE client the webhook needs.
type Messenger interface {
	ParseRequest(r *http.Request) ([]*linebot.Event, error)
	ReplyText(ctx context.Context, replyToken string, texts ...string) error
	PushText(ctx context.Context, to string, text string) error
}

const (
	commandList  = "list"
	welcomeText  = "Share your location to get reminded when you are near a saved reminder."
	usageText    = "Send a location message to check nearby reminders, or \"list\" to see every saved reminder."
	noRemindText = "No reminders saved."
	noNearbyText = "No reminders nearby."
)

// LineHandler handles incoming LINE webhook events.
type LineHandler struct {
	messenger   Messenger
	userService service.UserService
	locations   LocationReporter
	dataSource  repository.ReminderDataSource
	adminUserID string
	log         logger.Logger
}

// NewLineHandler creates a new LineHandler.
func NewLineHandler(
	messenger Messenger,
	userService service.UserService,
	locations LocationReporter,
	dataSource repository.ReminderDataSource,
	adminUserID string,
	log logger.Logger,
) *LineHandler {
	return &LineHandler{
		messenger:   messenger,
		userService: userService,
		locations:   locations,
		dataSource:  dataSource,
		adminUserID: adminUserID,
		log:         log,
	}
}

// HandleWebhook is the main entry point for webhook requests.
func (h *LineHandler) HandleWebhook(c echo.Context) error {
	ctx := c.Request().Context()
	events, err := h.messenger.ParseRequest(c.Request())
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			h.log.Warn("Invalid LINE signature received")
			return c.String(http.StatusBadRequest, "Invalid signature")
		}
		h.log.Error("Failed to parse LINE webhook request", err)
		return c.String(http.StatusInternalServerError, "Error parsing request")
	}

	for _, event := range events {
		h.log.Info(fmt.Sprintf("Processing event type: %s", event.Type))
		switch event.Type {
		case linebot.EventTypeMessage:
			h.handleMessageEvent(ctx, event)
		case linebot.EventTypeFollow:
			h.handleFollowEvent(ctx, event)
		case linebot.EventTypeUnfollow:
			h.handleUnfollowEvent(ctx, event)
		default:
			h.log.Info(fmt.Sprintf("Unhandled event type: %s", event.Type))
		}
	}

	return c.String(http.StatusOK, "OK")
}

// handleFollowEvent registers the follower as a subscriber.
func (h *LineHandler) handleFollowEvent(ctx context.Context, event *linebot.Event) {
	userID := event.Source.UserID
	h.log.Info(fmt.Sprintf("User %s followed the bot.", userID))

	if _, err := h.userService.GetOrCreateUser(ctx, userID); err != nil {
		h.reply(ctx, event.ReplyToken, "Failed to register your subscription. Please try again later.")
		return
	}
	h.reply(ctx, event.ReplyToken, welcomeText, usageText)

	if h.adminUserID == "" || h.adminUserID == userID {
		return
	}
	msg := fmt.Sprintf("User (ID: %s) followed the bot.", userID)
	if err := h.messenger.PushText(ctx, h.adminUserID, msg); err != nil {
		h.log.Error(fmt.Sprintf("Failed to send follow notification to admin %s for follower %s", h.adminUserID, userID), err)
	}
}

// handleUnfollowEvent removes the subscription. No reply is possible.
func (h *LineHandler) handleUnfollowEvent(ctx context.Context, event *linebot.Event) {
	userID := event.Source.UserID
	h.log.Info(fmt.Sprintf("User %s unfollowed or blocked the bot.", userID))

	h.locations.Forget(userID)
	if err := h.userService.DeleteUser(ctx, userID); err != nil {
		h.log.Warn(fmt.Sprintf("Subscriber %s could not be removed: %v", userID, err))
	}
}

// handleMessageEvent processes text and location messages.
func (h *LineHandler) handleMessageEvent(ctx context.Context, event *linebot.Event) {
	userID := event.Source.UserID

	switch message := event.Message.(type) {
	case *linebot.TextMessage:
		h.log.Info(fmt.Sprintf("Received text message from %s", userID))
		if strings.EqualFold(strings.TrimSpace(message.Text), commandList) {
			h.sendReminderList(ctx, event.ReplyToken)
			return
		}
		h.reply(ctx, event.ReplyToken, usageText)

	case *linebot.LocationMessage:
		h.log.Info(fmt.Sprintf("Received location from %s", userID))
		triggered, err := h.locations.ReportLocation(ctx, userID, message.Latitude, message.Longitude)
		if err != nil {
			h.log.Error(fmt.Sprintf("Failed to evaluate location from %s", userID), err)
			h.reply(ctx, event.ReplyToken, "Failed to check nearby reminders.")
			return
		}
		if len(triggered) == 0 {
			h.reply(ctx, event.ReplyToken, noNearbyText)
			return
		}
		lines := make([]string, 0, len(triggered))
		for _, item := range triggered {
			lines = append(lines, "- "+describe(item.Title, item.Location))
		}
		h.reply(ctx, event.ReplyToken, "You are near:\n"+strings.Join(lines, "\n"))

	default:
		h.log.Info(fmt.Sprintf("Received unsupported message type from %s", userID))
	}
}

// sendReminderList replies with every saved reminder.
func (h *LineHandler) sendReminderList(ctx context.Context, replyToken string) {
	res := h.dataSource.GetReminders(ctx)
	if res.IsError() {
		h.log.Warn("Failed to load reminders for list command: " + res.Message())
		h.reply(ctx, replyToken, "Failed to load reminders.")
		return
	}
	if len(res.Data()) == 0 {
		h.reply(ctx, replyToken, noRemindText)
		return
	}

	var b strings.Builder
	b.WriteString("Saved reminders:")
	for _, r := range res.Data() {
		b.WriteString("\n- ")
		b.WriteString(describe(r.Title, r.Location))
	}
	h.reply(ctx, replyToken, b.String())
}

func (h *LineHandler) reply(ctx context.Context, replyToken string, texts ...string) {
	if err := h.messenger.ReplyText(ctx, replyToken, texts...); err != nil {
		h.log.Error("Failed to send reply message", err)
	}
}

func describe(title, location *string) string {
	t, l := "(untitled)", ""
	if title != nil && *title != "" {
		t = *title
	}
	if location != nil && *location != "" {
		l = " @ " + *location
	}
	return t + l
}
