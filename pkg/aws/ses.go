package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// DefaultSubject is the subject line of the report email
const DefaultSubject = "AWS - AMI Image Details"

const charset = "UTF-8"

// RunIDTag names the message tag carrying the run id
const RunIDTag = "run_id"

// ErrMissingAddress is returned when a message has no sender or recipient
var ErrMissingAddress = errors.New("from and to addresses are required")

// SESAPI is the subset of the SES API used to deliver reports
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Message is a report email with text and HTML bodies
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string

	// RunID is attached as a message tag when set
	RunID string
}

// SESMailer sends report emails through Amazon SES
type SESMailer struct {
	client SESAPI
}

// NewSESMailer creates a mailer using cfg's region
func NewSESMailer(cfg aws.Config) *SESMailer {
	return NewSESMailerWithAPI(ses.NewFromConfig(cfg))
}

// NewSESMailerWithAPI wraps an existing SES API implementation
func NewSESMailerWithAPI(api SESAPI) *SESMailer {
	return &SESMailer{client: api}
}

// Send delivers msg and returns the SES message id
func (m *SESMailer) Send(ctx context.Context, msg Message) (string, error) {
	if msg.From == "" || msg.To == "" {
		return "", ErrMissingAddress
	}
	subject := msg.Subject
	if subject == "" {
		subject = DefaultSubject
	}

	input := &ses.SendEmailInput{
		Source: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Charset: aws.String(charset), Data: aws.String(subject)},
			Body: &types.Body{
				Html: &types.Content{Charset: aws.String(charset), Data: aws.String(msg.HTML)},
				Text: &types.Content{Charset: aws.String(charset), Data: aws.String(msg.Text)},
			},
		},
	}

	if msg.RunID != "" {
		input.Tags = []types.MessageTag{{Name: aws.String(RunIDTag), Value: aws.String(msg.RunID)}}
	}

	result, err := m.client.SendEmail(ctx, input)
	if err != nil {
		return "", fmt.Errorf("error sending report email to %s: %w", msg.To, err)
	}
	return aws.ToString(result.MessageId), nil
}
