// Package notify tells reviewers that new feedback is waiting.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/Ren-zee/exploremore/internal/domain"
)

// LogNotifier records submissions in the log only.
type LogNotifier struct {
	log *slog.Logger
}

// NewLog creates a LogNotifier.
func NewLog(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("component", "notify")}
}

// FeedbackSubmitted implements the submission notifier.
func (n *LogNotifier) FeedbackSubmitted(ctx context.Context, fb domain.Feedback) error {
	n.log.InfoContext(ctx, "feedback awaiting review",
		slog.String("feedback_id", fb.ID.String()),
		slog.Bool("profane", fb.IsProfane()),
	)
	return nil
}

// EmailNotifier sends one e-mail per submission through Resend.
type EmailNotifier struct {
	client *resend.Client
	from   string
	to     []string
}

// NewEmail creates an EmailNotifier.
func NewEmail(apiKey, from string, to []string) *EmailNotifier {
	return &EmailNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

// FeedbackSubmitted implements the submission notifier.
func (n *EmailNotifier) FeedbackSubmitted(ctx context.Context, fb domain.Feedback) error {
	_, err := n.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      n.to,
		Subject: subject(fb),
		Text:    body(fb),
	})
	if err != nil {
		return fmt.Errorf("send review e-mail: %w", err)
	}
	return nil
}

func subject(fb domain.Feedback) string {
	if fb.IsProfane() {
		return "New feedback awaiting review (filtered)"
	}
	return "New feedback awaiting review"
}

func body(fb domain.Feedback) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s\n", fb.ID)
	fmt.Fprintf(&b, "User: %s\n", fb.UserID)
	fmt.Fprintf(&b, "Submitted: %s\n", fb.CreatedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Profanity filtered: %t\n\n", fb.IsProfane())
	b.WriteString(fb.FilteredText)
	b.WriteString("\n")
	return b.String()
}
