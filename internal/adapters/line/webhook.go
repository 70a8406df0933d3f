package line

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"go.uber.org/zap"
)

// Responder produces the reply text for one inbound message. Implemented by
// the chat interpreter; it always returns a string, never an error.
type Responder interface {
	Handle(ctx context.Context, text string) string
}

// Webhook is the HTTP endpoint LINE calls with batched events. Events in one
// callback are processed sequentially in arrival order; a failed reply is
// logged and the rest of the batch continues.
type Webhook struct {
	channelSecret string
	responder     Responder
	replier       Replier
	logger        *zap.Logger
}

func NewWebhook(channelSecret string, responder Responder, replier Replier, logger *zap.Logger) *Webhook {
	return &Webhook{
		channelSecret: channelSecret,
		responder:     responder,
		replier:       replier,
		logger:        logger,
	}
}

func (h *Webhook) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cb, err := webhook.ParseRequest(h.channelSecret, r)
	if err != nil {
		h.logger.Error("webhook parse failed", zap.Error(err))
		status := http.StatusInternalServerError
		if err == webhook.ErrInvalidSignature {
			status = http.StatusBadRequest
		}
		w.WriteHeader(status)
		return
	}

	for _, event := range cb.Events {
		msgEvent, ok := event.(webhook.MessageEvent)
		if !ok {
			h.logger.Info("unsupported event type", zap.String("type", event.GetType()))
			continue
		}
		textMsg, ok := msgEvent.Message.(webhook.TextMessageContent)
		if !ok {
			h.logger.Info("unsupported message type", zap.String("type", msgEvent.Message.GetType()))
			continue
		}

		reply := h.responder.Handle(r.Context(), textMsg.Text)
		if err := h.replier.Reply(r.Context(), msgEvent.ReplyToken, reply); err != nil {
			h.logger.Error("reply delivery failed", zap.Error(err))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
