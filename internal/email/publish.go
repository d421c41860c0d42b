package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"

	"github.com/codr1/pagecraft/internal/models"
)

const publishEmailTimeout = 10 * time.Second

// PublishNotifier emails a fixed recipient whenever a site is published.
type PublishNotifier struct {
	sender    Sender
	recipient string
	baseURL   string
}

func NewPublishNotifier(sender Sender, recipient, baseURL string) *PublishNotifier {
	return &PublishNotifier{
		sender:    sender,
		recipient: strings.TrimSpace(recipient),
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

// BuildPublishEmail describes a published site: when, where it was written and its
// sections in page order. The editor link needs a base URL.
func BuildPublishEmail(project models.Project, path, baseURL string, publishedAt time.Time) Message {
	when := publishedAt.UTC().Format("Monday, Jan 2, 2006 at 15:04 MST")
	editor := ""
	if baseURL != "" {
		editor = fmt.Sprintf("%s/projects/%s/editor", baseURL, project.ID)
	}
	ordered := project.SortedSections()

	var text strings.Builder
	fmt.Fprintf(&text, "Your site %q was published on %s.\n\n", project.Name, when)
	fmt.Fprintf(&text, "Output: %s\n", path)
	if editor != "" {
		fmt.Fprintf(&text, "Editor: %s\n", editor)
	}
	text.WriteString("\nSections:\n")
	for _, section := range ordered {
		fmt.Fprintf(&text, "  %d. %s\n", section.Order+1, section.Type)
	}

	var html strings.Builder
	fmt.Fprintf(&html, "<p>Your site <strong>%s</strong> was published on %s.</p>",
		templ.EscapeString(project.Name), templ.EscapeString(when))
	fmt.Fprintf(&html, "<p>Output: <code>%s</code></p>", templ.EscapeString(path))
	if editor != "" {
		fmt.Fprintf(&html, `<p><a href="%s">Open the editor</a></p>`, templ.EscapeString(editor))
	}
	html.WriteString("<ol>")
	for _, section := range ordered {
		fmt.Fprintf(&html, "<li>%s</li>", templ.EscapeString(section.Type))
	}
	html.WriteString("</ol>")

	return Message{
		Subject: fmt.Sprintf("%s was published", project.Name),
		Text:    text.String(),
		HTML:    html.String(),
	}
}

// NotifyPublished sends the notice in the background. Failures are logged.
func (n *PublishNotifier) NotifyPublished(ctx context.Context, project models.Project, path string) {
	if n == nil || n.sender == nil || n.recipient == "" {
		return
	}
	msg := BuildPublishEmail(project, path, n.baseURL, time.Now())
	msg.To = n.recipient
	logger := log.Ctx(ctx).With().Str("project_id", project.ID).Str("recipient", n.recipient).Logger()

	// The send outlives the publish request that triggered it.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishEmailTimeout)
	go func() {
		defer cancel()
		if err := n.sender.Send(logger.WithContext(sendCtx), msg); err != nil {
			logger.Error().Err(err).Msg("Failed to send publish notification")
			return
		}
		logger.Info().Msg("Publish notification sent")
	}()
}
