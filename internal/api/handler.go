// Package api provides the HTTP surface of the bot: the messaging webhook
// and the liveness probes.
package api

import (
	"log"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/Niharikab29/Airport-Saathi/internal/bot"
	"github.com/Niharikab29/Airport-Saathi/internal/twilio"
)

// Handler handles HTTP requests.
type Handler struct {
	resolver *bot.Resolver
}

// NewHandler creates a new handler.
func NewHandler(resolver *bot.Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/whatsapp", h.Whatsapp)
	e.GET("/health", h.Health)
	e.GET("/test", h.Test)
}

// Whatsapp handles one inbound message from the messaging webhook. The
// webhook contract is to always answer 200 with a TwiML document; turn
// failures are already mapped to fixed replies inside the resolver.
func (h *Handler) Whatsapp(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		form = url.Values{}
	}
	msg := twilio.ParseInbound(form)
	log.Printf("[saathi] inbound message: from=%s media=%d", msg.From, msg.NumMedia)

	reply := h.resolver.HandleTurn(c.Request().Context(), bot.Inbound{
		UserID:           msg.From,
		Text:             msg.Body,
		HasAudio:         msg.HasAudio(),
		MediaURL:         msg.MediaURL,
		MediaContentType: msg.MediaContentType,
		Latitude:         msg.Latitude,
		Longitude:        msg.Longitude,
	})

	body, err := twilio.RenderTwiML(reply.Text, reply.MediaURL, reply.QuickReplies)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.Blob(http.StatusOK, "text/xml", body)
}

// Health returns health status. No side effects.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Test is the probe endpoint kept for parity with older deployments.
func (h *Handler) Test(c echo.Context) error {
	return c.String(http.StatusOK, "Test endpoint working!")
}
