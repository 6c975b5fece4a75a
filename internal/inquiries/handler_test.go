package inquiries

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mansionmarket-backend/internal/notifications"
	"mansionmarket-backend/internal/validation"

	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	err      error
	calls    int
	toEmail  string
	received notifications.InquiryNotification
}

func (f *fakeNotifier) SendInquiryNotification(ctx context.Context, toEmail string, inquiry notifications.InquiryNotification) (string, error) {
	f.calls++
	f.toEmail = toEmail
	f.received = inquiry
	if f.err != nil {
		return "", f.err
	}
	return "message-id", nil
}

func newTestHandler(notifier Notifier) (*Handler, *fakeRepository) {
	repo := newFakeRepository()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(NewService(repo), validation.New(), notifier, "agency@example.com", log), repo
}

func postInquiry(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

const validBody = `{"firstname":"Riley","lastname":"Banks","email":"riley@example.com","phone":"+971500000001","message":"Interested in the villa."}`

func TestCreateSendsNotification(t *testing.T) {
	notifier := &fakeNotifier{}
	h, repo := newTestHandler(notifier)

	rec := postInquiry(t, h, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "Inquiry submitted successfully")

	require.Len(t, repo.byID, 1)
	require.Equal(t, 1, notifier.calls)
	require.Equal(t, "agency@example.com", notifier.toEmail)
	require.Equal(t, "Riley", notifier.received.FirstName)
	require.Equal(t, "Interested in the villa.", notifier.received.Message)
}

func TestCreateSucceedsWhenNotificationFails(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("smtp relay down")}
	h, repo := newTestHandler(notifier)

	rec := postInquiry(t, h, validBody)

	// The inquiry is stored and the caller sees success; the delivery failure
	// only reaches the logs.
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "Inquiry submitted successfully")
	require.Len(t, repo.byID, 1)
	require.Equal(t, 1, notifier.calls)
}

func TestCreateWithoutNotifierConfigured(t *testing.T) {
	h, repo := newTestHandler(nil)

	rec := postInquiry(t, h, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.byID, 1)
}

func TestCreateValidationFailureDoesNotNotify(t *testing.T) {
	notifier := &fakeNotifier{}
	h, repo := newTestHandler(notifier)

	rec := postInquiry(t, h, `{"firstname":"Riley"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, repo.byID)
	require.Zero(t, notifier.calls)
}
