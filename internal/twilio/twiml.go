package twilio

import (
	"encoding/xml"
	"strings"
)

type twimlMessage struct {
	XMLName xml.Name `xml:"Message"`
	Body    string   `xml:"Body"`
	Media   string   `xml:"Media,omitempty"`
}

type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message twimlMessage
}

// RenderTwiML serializes one outbound message: a text body, an optional
// single media attachment, and optional quick-reply labels. The channel has
// no native quick-reply buttons, so labels degrade to a plain-text line
// appended after the body.
func RenderTwiML(text, mediaURL string, quickReplies []string) ([]byte, error) {
	body := text
	if len(quickReplies) > 0 {
		body = strings.TrimSpace(body + "\n\nQuick replies: " + strings.Join(quickReplies, " | "))
	}

	out, err := xml.Marshal(twimlResponse{
		Message: twimlMessage{Body: body, Media: mediaURL},
	})
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
