package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	openaigo "github.com/openai/openai-go/v3"
	"github.com/stretchr/testify/assert"

	"github.com/Niharikab29/Airport-Saathi/internal/api"
	"github.com/Niharikab29/Airport-Saathi/internal/bot"
	"github.com/Niharikab29/Airport-Saathi/internal/kb"
	"github.com/Niharikab29/Airport-Saathi/internal/store"
)

type stubCompleter struct{ reply string }

func (s *stubCompleter) Complete(context.Context, []openaigo.ChatCompletionMessageParamUnion, int64) (string, error) {
	return s.reply, nil
}

type stubTranscriber struct{}

func (stubTranscriber) Transcribe(context.Context, []byte, string) (string, error) {
	return "", nil
}

type stubMedia struct{}

func (stubMedia) FetchMedia(context.Context, string) ([]byte, error) {
	return nil, nil
}

func newTestHandler() *api.Handler {
	resolver := bot.NewResolver(store.NewStore(), stubTranscriber{}, &stubCompleter{reply: "Gate 14 is straight ahead past security."}, stubMedia{})
	return api.NewHandler(resolver)
}

func postForm(e *echo.Echo, h *api.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h.Whatsapp(c)
	return rec
}

func TestWhatsapp_FirstContactRendersTwiML(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	form := url.Values{}
	form.Set("From", "whatsapp:+919876543210")
	form.Set("Body", "hi")

	rec := postForm(e, h, form)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/xml")
	assert.Contains(t, rec.Body.String(), "<Response><Message><Body>")
	assert.Contains(t, rec.Body.String(), "share your live location")
}

func TestWhatsapp_KBAnswer(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	form := url.Values{}
	form.Set("From", "whatsapp:+919876543210")
	form.Set("Body", "hi")
	postForm(e, h, form)

	form.Set("Body", "what is the wifi password process")
	rec := postForm(e, h, form)

	wifi, _ := kb.Fact("wifi")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Airport_Free_WiFi")
	// verbatim fact modulo XML escaping
	assert.Contains(t, wifi, "Airport_Free_WiFi")
}

func TestWhatsapp_MapFactAttachesMedia(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	form := url.Values{}
	form.Set("From", "whatsapp:+911111111111")
	form.Set("Body", "hi")
	postForm(e, h, form)

	form.Set("Body", "how do I get to terminal 1")
	rec := postForm(e, h, form)
	assert.Contains(t, rec.Body.String(), "<Media>")
	assert.NotContains(t, rec.Body.String(), "&lt;MAP&gt;")
}

func TestWhatsapp_EmptyFormStillAnswers(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	rec := postForm(e, h, url.Values{})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<Response>")
}

func TestHealth(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestTestProbe(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.Test(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Test endpoint working!", rec.Body.String())
}
