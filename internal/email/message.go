// Package email delivers notices about published sites through Amazon SES.
package email

import (
	"context"
	"errors"
	"strings"
)

var ErrNoRecipient = errors.New("email recipient is required")

// Message is one email to a single recipient. HTML is optional; Text is always sent.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

func (m Message) validate() error {
	if strings.TrimSpace(m.To) == "" {
		return ErrNoRecipient
	}
	if strings.TrimSpace(m.Subject) == "" {
		return errors.New("email subject is required")
	}
	return nil
}

// Sender delivers messages. SESClient is the production implementation.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
