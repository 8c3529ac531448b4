package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	_, err := New("", "from@example.com", "to@example.com")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = New("re_key", "", "to@example.com")
	assert.ErrorIs(t, err, ErrMissingAddress)

	_, err = New("re_key", "from@example.com", "")
	assert.ErrorIs(t, err, ErrMissingAddress)

	client, err := New("re_key", "from@example.com", "to@example.com")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestSendContactEmail(t *testing.T) {
	var (
		gotAuth string
		gotBody sendEmailRequest
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"4ef4"}`))
	}))
	defer srv.Close()

	client, err := New("re_key", "noreply@resend.dev", "blake@example.com", WithBaseURL(srv.URL))
	require.NoError(t, err)

	err = client.SendContactEmail(context.Background(), Submission{
		Name:     "Jane <Doe>",
		Email:    "jane@example.com",
		LinkedIn: "https://linkedin.com/in/janedoe",
		Message:  "Hello & hi\nSecond line",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_key", gotAuth)
	assert.Equal(t, "noreply@resend.dev", gotBody.From)
	assert.Equal(t, []string{"blake@example.com"}, gotBody.To)
	assert.Equal(t, "Contact Form: Jane <Doe>", gotBody.Subject)
	assert.Equal(t, "jane@example.com", gotBody.ReplyTo)

	// user content is escaped in the HTML body, untouched in the text body
	assert.Contains(t, gotBody.HTML, "Jane &lt;Doe&gt;")
	assert.Contains(t, gotBody.HTML, "Hello &amp; hi<br>Second line")
	assert.NotContains(t, gotBody.HTML, "Jane <Doe>")
	assert.Contains(t, gotBody.Text, "Jane <Doe>")
	assert.Contains(t, gotBody.Text, "Hello & hi\nSecond line")
	assert.Contains(t, gotBody.Text, "Sent from blakeyoder.com contact form")
}

func TestSendContactEmail_EscapesMarkupInjection(t *testing.T) {
	var gotBody sendEmailRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"4ef4"}`))
	}))
	defer srv.Close()

	client, err := New("re_key", "noreply@resend.dev", "blake@example.com", WithBaseURL(srv.URL))
	require.NoError(t, err)

	err = client.SendContactEmail(context.Background(), Submission{
		Name:     "Bot",
		Email:    "bot@example.com",
		LinkedIn: "https://linkedin.com/in/bot",
		Message:  `<script>alert("x")</script>`,
	})
	require.NoError(t, err)

	assert.NotContains(t, gotBody.HTML, "<script>")
	assert.Contains(t, gotBody.HTML, "&lt;script&gt;")
}

func TestSendContactEmail_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"message":"invalid to address"}`))
	}))
	defer srv.Close()

	client, err := New("re_key", "noreply@resend.dev", "blake@example.com", WithBaseURL(srv.URL))
	require.NoError(t, err)

	err = client.SendContactEmail(context.Background(), Submission{
		Name:  "Jane",
		Email: "jane@example.com",
	})

	assert.Error(t, err)
}
