package email

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/codr1/pagecraft/internal/models"
)

type fakeEmailSender struct {
	sendCalls   int32
	sendStarted chan struct{}
	sendCtxErr  chan error
	msg         atomic.Value
}

func newFakeEmailSender() *fakeEmailSender {
	return &fakeEmailSender{
		sendStarted: make(chan struct{}, 1),
		sendCtxErr:  make(chan error, 1),
	}
}

func (f *fakeEmailSender) Send(ctx context.Context, msg Message) error {
	atomic.AddInt32(&f.sendCalls, 1)
	f.msg.Store(msg)
	select {
	case f.sendStarted <- struct{}{}:
	default:
	}
	select {
	case <-ctx.Done():
		f.sendCtxErr <- ctx.Err()
		return ctx.Err()
	case <-time.After(50 * time.Millisecond):
		f.sendCtxErr <- nil
		return nil
	}
}

func waitForSignal(t *testing.T, ch <-chan struct{}, message string) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal(message)
	}
}

func waitForError(t *testing.T, ch <-chan error, message string) error {
	t.Helper()

	select {
	case err := <-ch:
		return err
	case <-time.After(time.Second):
		t.Fatal(message)
		return nil
	}
}

func TestNotifyPublishedSurvivesRequestCancellation(t *testing.T) {
	sender := newFakeEmailSender()
	notifier := NewPublishNotifier(sender, "owner@example.com", "https://builder.example.com/")

	ctx, cancel := context.WithCancel(context.Background())
	notifier.NotifyPublished(ctx, models.Project{ID: "p1", Name: "Acme"}, "public/p1/index.html")

	waitForSignal(t, sender.sendStarted, "expected publish send to start")
	cancel()

	if err := waitForError(t, sender.sendCtxErr, "expected publish send to finish"); err != nil {
		t.Fatalf("send observed cancellation: %v", err)
	}
	if got := atomic.LoadInt32(&sender.sendCalls); got != 1 {
		t.Fatalf("expected one send call, got %d", got)
	}
	msg := sender.msg.Load().(Message)
	if msg.To != "owner@example.com" || msg.Subject != "Acme was published" {
		t.Fatalf("message = %+v", msg)
	}
	if !strings.Contains(msg.Text, "https://builder.example.com/projects/p1/editor") {
		t.Fatalf("text = %q", msg.Text)
	}
}

func TestNotifyPublishedWithoutRecipientSkips(t *testing.T) {
	sender := newFakeEmailSender()
	NewPublishNotifier(sender, " ", "").NotifyPublished(context.Background(), models.Project{ID: "p1"}, "x")

	var nilNotifier *PublishNotifier
	nilNotifier.NotifyPublished(context.Background(), models.Project{ID: "p1"}, "x")

	time.Sleep(20 * time.Millisecond)
	if got := atomic.LoadInt32(&sender.sendCalls); got != 0 {
		t.Fatalf("expected no send, got %d", got)
	}
}

func TestBuildPublishEmailListsSectionsInOrder(t *testing.T) {
	project := models.Project{
		ID:   "p1",
		Name: "Acme",
		Sections: []models.Section{
			{ID: "b", Type: "footer-simple", Order: 1},
			{ID: "a", Type: "hero-split", Order: 0},
		},
	}
	at := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	body := BuildPublishEmail(project, "public/p1/index.html", "", at).Text
	hero := strings.Index(body, "1. hero-split")
	footer := strings.Index(body, "2. footer-simple")
	if hero < 0 || footer < 0 || hero > footer {
		t.Fatalf("body = %q", body)
	}
	if !strings.Contains(body, "Monday, Mar 2, 2026 at 09:30 UTC") {
		t.Fatalf("missing timestamp: %q", body)
	}
	if strings.Contains(body, "Editor:") {
		t.Fatalf("editor link without base URL: %q", body)
	}
}

func TestBuildPublishEmailHTMLIsEscaped(t *testing.T) {
	project := models.Project{ID: "p1", Name: "Tom & <Jerry>"}
	msg := BuildPublishEmail(project, "public/p1/index.html", "https://builder.example.com", time.Now())

	if !strings.Contains(msg.HTML, "Tom &amp; &lt;Jerry&gt;") {
		t.Fatalf("html = %q", msg.HTML)
	}
	if !strings.Contains(msg.HTML, `href="https://builder.example.com/projects/p1/editor"`) {
		t.Fatalf("html missing editor link: %q", msg.HTML)
	}
}

func TestMessageValidate(t *testing.T) {
	tests := []struct {
		name    string
		msg     Message
		wantErr bool
	}{
		{name: "ok", msg: Message{To: "a@example.com", Subject: "hi"}},
		{name: "no_recipient", msg: Message{Subject: "hi"}, wantErr: true},
		{name: "no_subject", msg: Message{To: "a@example.com"}, wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := test.msg.validate(); (err != nil) != test.wantErr {
				t.Fatalf("validate() error = %v", err)
			}
		})
	}
}

func TestSESInput(t *testing.T) {
	in := sesInput("site@example.com", Message{To: "a@example.com", Subject: "s", Text: "t"})
	if *in.FromEmailAddress != "site@example.com" || in.Destination.ToAddresses[0] != "a@example.com" {
		t.Fatalf("input = %+v", in)
	}
	if in.Content.Simple.Body.Html != nil {
		t.Fatalf("html body set without html")
	}
	if *in.Content.Simple.Body.Text.Data != "t" {
		t.Fatalf("text body = %q", *in.Content.Simple.Body.Text.Data)
	}
}
