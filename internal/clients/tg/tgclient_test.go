package tg

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func Test_WebhookMux_ShouldAcceptUpdateOnWebhookPath(t *testing.T) {
	c := &Client{client: &tgbotapi.BotAPI{Buffer: 1}}
	updates := make(chan tgbotapi.Update, 1)
	mux := c.webhookMux("/webhook/token", updates)

	body := strings.NewReader(`{"update_id":7,"message":{"message_id":1,"text":"Coffee 50","from":{"id":123}}}`)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhook/token", body))

	assert.Equal(t, http.StatusOK, rec.Code)
	update := <-updates
	assert.Equal(t, 7, update.UpdateID)
	assert.Equal(t, "Coffee 50", update.Message.Text)
}

func Test_WebhookMux_ShouldNotServeForeignPaths(t *testing.T) {
	c := &Client{client: &tgbotapi.BotAPI{Buffer: 1}}
	updates := make(chan tgbotapi.Update, 1)
	mux := c.webhookMux("/webhook/token", updates)

	// Путь сервиса метрик на сервере webhook не обслуживается.
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_WebhookMux_ShouldRejectMalformedUpdate(t *testing.T) {
	c := &Client{client: &tgbotapi.BotAPI{Buffer: 1}}
	updates := make(chan tgbotapi.Update, 1)
	mux := c.webhookMux("/webhook/token", updates)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhook/token", strings.NewReader("not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, updates)
}
