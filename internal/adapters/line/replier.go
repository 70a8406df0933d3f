// Package line adapts the LINE messaging platform: it verifies and parses
// webhook callbacks and delivers reply messages through the Messaging API.
package line

import (
	"context"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"go.uber.org/zap"
)

// Replier delivers one reply for an inbound event's reply handle.
type Replier interface {
	Reply(ctx context.Context, replyToken, text string) error
}

// APIReplier sends replies through the LINE Messaging API.
type APIReplier struct {
	api *messaging_api.MessagingApiAPI
}

func NewAPIReplier(channelAccessToken string) (*APIReplier, error) {
	api, err := messaging_api.NewMessagingApiAPI(channelAccessToken)
	if err != nil {
		return nil, err
	}
	return &APIReplier{api: api}, nil
}

func (r *APIReplier) Reply(ctx context.Context, replyToken, text string) error {
	_, err := r.api.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	})
	return err
}

// LogReplier stands in when no channel access token is configured (local
// development): replies are logged instead of delivered.
type LogReplier struct {
	Logger *zap.Logger
}

func (r *LogReplier) Reply(ctx context.Context, replyToken, text string) error {
	r.Logger.Info("reply (dry-run)", zap.String("replyToken", replyToken), zap.String("text", text))
	return nil
}
