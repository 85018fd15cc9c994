package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/fleetops/docdb-remediator/providers"
	"github.com/fleetops/docdb-remediator/types"
)

// SNSNotifier publishes workflow notifications to an SNS topic
type SNSNotifier struct {
	client   SNSAPI
	topicARN string
}

// NewSNSNotifier creates a notifier with real AWS credentials
func NewSNSNotifier(ctx context.Context, region, topicARN string) (*SNSNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SNSNotifier{
		client:   sns.NewFromConfig(cfg),
		topicARN: topicARN,
	}, nil
}

// NewSNSNotifierWithClient creates a notifier with an injected client
func NewSNSNotifierWithClient(client SNSAPI, topicARN string) *SNSNotifier {
	return &SNSNotifier{client: client, topicARN: topicARN}
}

// Send publishes one notification. Fire-and-forget: the publish error is
// surfaced but no delivery confirmation is consumed.
func (n *SNSNotifier) Send(ctx context.Context, notification types.Notification) error {
	_, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(notification.Subject),
		Message:  aws.String(notification.Body),
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

var _ providers.Notifier = (*SNSNotifier)(nil)
