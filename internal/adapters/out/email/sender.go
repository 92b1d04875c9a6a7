// Package email delivers customer notifications through Amazon SES v2.
package email

import (
	"context"
	"fmt"
	"strings"

	"laundry/internal/core/domain/model/notification"
	"laundry/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

const charset = "UTF-8"

// SESClient is the part of the SES v2 client the sender uses.
type SESClient interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESSender implements ports.NotificationSender.
type SESSender struct {
	client SESClient
	from   string
}

// NewSESSender loads the default AWS credential chain for region.
func NewSESSender(ctx context.Context, region, from string) (*SESSender, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewSESSenderWithClient(sesv2.NewFromConfig(cfg), from)
}

func NewSESSenderWithClient(client SESClient, from string) (*SESSender, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("ses client")
	}
	from = strings.TrimSpace(from)
	if from == "" {
		return nil, errs.NewValueIsRequiredError("from address")
	}
	return &SESSender{client: client, from: from}, nil
}

// Send e-mails the notification to its recipient as plain text.
func (s *SESSender) Send(ctx context.Context, n notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{n.Recipient},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(n.Subject()), Charset: aws.String(charset)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(Body(n)), Charset: aws.String(charset)},
				},
			},
		},
		EmailTags: []types.MessageTag{
			{Name: aws.String("template"), Value: aws.String(n.Template.String())},
		},
	})
	if err != nil {
		return fmt.Errorf("send %s to %s: %w", n.Template, n.Recipient, err)
	}

	return nil
}

// Body renders the plain text body.
func Body(n notification.Notification) string {
	var b strings.Builder
	b.WriteString(n.Template.Subject())
	b.WriteString(".\n")

	if number := n.Data[notification.KeyOrderNumber]; number != "" {
		fmt.Fprintf(&b, "\nOrder: %s\n", number)
	}
	if status := n.Data[notification.KeyStatus]; status != "" {
		fmt.Fprintf(&b, "Status: %s\n", strings.ReplaceAll(status, "_", " "))
	}

	return b.String()
}
