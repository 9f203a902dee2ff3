// Package twilio adapts the WhatsApp messaging channel: inbound webhook
// fields, authenticated media fetch, and TwiML rendering.
package twilio

import (
	"net/url"
	"strconv"
	"strings"
)

// InboundMessage carries the webhook fields the bot consumes. Missing form
// fields come through as empty strings, never as errors.
type InboundMessage struct {
	From             string
	Body             string
	NumMedia         int
	MediaContentType string
	MediaURL         string
	Latitude         string
	Longitude        string
}

// ParseInbound extracts the consumed fields from a Twilio webhook form.
func ParseInbound(form url.Values) InboundMessage {
	numMedia, _ := strconv.Atoi(form.Get("NumMedia"))
	return InboundMessage{
		From:             form.Get("From"),
		Body:             form.Get("Body"),
		NumMedia:         numMedia,
		MediaContentType: form.Get("MediaContentType0"),
		MediaURL:         form.Get("MediaUrl0"),
		Latitude:         form.Get("Latitude"),
		Longitude:        form.Get("Longitude"),
	}
}

// HasAudio reports whether the message carries an audio attachment. Only
// audio/* media is acted upon; everything else is ignored.
func (m InboundMessage) HasAudio() bool {
	return m.NumMedia > 0 && strings.HasPrefix(m.MediaContentType, "audio/") && m.MediaURL != ""
}

// HasGeolocation reports whether the message carries shared coordinates.
func (m InboundMessage) HasGeolocation() bool {
	return strings.TrimSpace(m.Latitude) != "" && strings.TrimSpace(m.Longitude) != ""
}
