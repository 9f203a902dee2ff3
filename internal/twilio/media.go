package twilio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const mediaFetchTimeout = 30 * time.Second

// maxMediaBytes caps voice-note downloads; WhatsApp voice notes are far
// smaller than this.
const maxMediaBytes = 16 * 1024 * 1024

// MediaClient downloads inbound media from Twilio. Media URLs require the
// account SID and auth token as basic auth.
type MediaClient struct {
	accountSID string
	authToken  string
	httpClient *http.Client
}

func NewMediaClient(accountSID, authToken string) *MediaClient {
	return &MediaClient{
		accountSID: accountSID,
		authToken:  authToken,
		httpClient: &http.Client{Timeout: mediaFetchTimeout},
	}
}

// FetchMedia downloads one media item.
func (c *MediaClient) FetchMedia(ctx context.Context, mediaURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build media request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch media: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxMediaBytes))
	if err != nil {
		return nil, fmt.Errorf("read media body: %w", err)
	}
	return data, nil
}
