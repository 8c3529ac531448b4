package mail

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/theopenlane/httpsling"
)

// Submission holds the validated contact form fields for the notification
type Submission struct {
	Name     string
	Email    string
	LinkedIn string
	Message  string
}

// sendEmailRequest is the Resend send endpoint payload
type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
	ReplyTo string   `json:"reply_to"`
}

// sendEmailResponse is the Resend send endpoint response
type sendEmailResponse struct {
	ID string `json:"id"`
}

// SendContactEmail formats a submission as both HTML and plain text and
// sends it to the configured destination. The reply-to is set to the
// submitter so replies route directly to them. A nil return means Resend
// accepted the message; callers must treat any error as a failed send.
func (c *Client) SendContactEmail(ctx context.Context, sub Submission) error {
	body := sendEmailRequest{
		From:    c.from,
		To:      []string{c.to},
		Subject: fmt.Sprintf("Contact Form: %s", sub.Name),
		HTML:    formatHTML(sub),
		Text:    formatText(sub),
		ReplyTo: sub.Email,
	}

	requester := httpsling.MustNew(
		httpsling.URL(c.baseURL+"/emails"),
		httpsling.Post(),
		httpsling.BearerAuth(c.apiKey),
		httpsling.JSON(false),
		httpsling.Body(body),
		httpsling.WithDoer(c.httpClient),
	)

	var sent sendEmailResponse

	resp, err := requester.ReceiveWithContext(ctx, &sent)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close error is non-critical

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return nil
}

// formatHTML renders the notification body, escaping every user-supplied
// field to neutralize markup injection
func formatHTML(sub Submission) string {
	link := html.EscapeString(sub.LinkedIn)
	message := strings.ReplaceAll(html.EscapeString(sub.Message), "\n", "<br>")

	return fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>From:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>LinkedIn:</strong> <a href="%s">%s</a></p>
<p><strong>Message:</strong></p>
<p>%s</p>
<hr>
<p><small>Sent from blakeyoder.com contact form</small></p>`,
		html.EscapeString(sub.Name),
		html.EscapeString(sub.Email),
		link,
		link,
		message,
	)
}

// formatText renders the plain-text alternative body
func formatText(sub Submission) string {
	return fmt.Sprintf(`New Contact Form Submission

From: %s
Email: %s
LinkedIn: %s

Message:
%s

---
Sent from blakeyoder.com contact form`,
		sub.Name,
		sub.Email,
		sub.LinkedIn,
		sub.Message,
	)
}
