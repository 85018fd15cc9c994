// Package source consumes compliance events from the upstream bus and feeds
// them to the workflow. Delivery reliability, retry, and dead-lettering
// belong to the bus; this is a thin adapter.
package source

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fleetops/docdb-remediator/telemetry"
	"github.com/fleetops/docdb-remediator/types"
)

var (
	messagesReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "remediator_source_messages_received_total",
		Help: "Messages received from the event queue",
	})
	messagesAcked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "remediator_source_messages_acked_total",
		Help: "Messages deleted from the event queue after handling",
	})
	handlerFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "remediator_source_handler_failures_total",
		Help: "Workflow executions that failed; their messages are left for redelivery",
	})
)

// SQSAPI defines the SQS operations used by the source.
type SQSAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// Handler processes one compliance event to completion
type Handler interface {
	HandleComplianceEvent(ctx context.Context, event types.ComplianceEvent) (types.Outcome, error)
}

// Options configure the source
type Options struct {
	QueueURL    string
	WaitSeconds int32
	BatchSize   int32
}

// Source long-polls the queue and runs one workflow execution per message
type Source struct {
	client  SQSAPI
	handler Handler
	logger  *telemetry.Logger
	opts    Options
}

// New creates a source over an SQS client and a workflow handler
func New(client SQSAPI, handler Handler, logger *telemetry.Logger, opts Options) *Source {
	return &Source{
		client:  client,
		handler: handler,
		logger:  logger,
		opts:    opts,
	}
}

// Run polls until the context is cancelled
func (s *Source) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		output, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(s.opts.QueueURL),
			MaxNumberOfMessages: s.opts.BatchSize,
			WaitTimeSeconds:     s.opts.WaitSeconds,
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			s.logger.WithContext(ctx).Error().Err(err).Msg("receive failed")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}

		for _, message := range output.Messages {
			s.handleMessage(ctx, message)
		}
	}
}

// handleMessage runs one delivery. The message is deleted on every
// non-failing path; a workflow failure leaves it for the bus to redeliver
// or dead-letter.
func (s *Source) handleMessage(ctx context.Context, message sqstypes.Message) {
	messagesReceived.Inc()

	event, err := ParseEnvelope([]byte(aws.ToString(message.Body)))
	if err != nil {
		// Undecodable messages would redeliver forever; drop them loudly.
		s.logger.WithContext(ctx).Error().Err(err).Msg("dropping malformed message")
		s.ack(ctx, message)
		return
	}

	if !event.IsNonCompliant() {
		s.ack(ctx, message)
		return
	}

	if _, err := s.handler.HandleComplianceEvent(ctx, event); err != nil {
		handlerFailures.Inc()
		s.logger.WithContext(ctx).Error().
			Err(err).
			Str("config_rule", event.ConfigRuleName).
			Msg("workflow failed, leaving message for redelivery")
		return
	}

	s.ack(ctx, message)
}

func (s *Source) ack(ctx context.Context, message sqstypes.Message) {
	_, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(s.opts.QueueURL),
		ReceiptHandle: message.ReceiptHandle,
	})
	if err != nil {
		s.logger.WithContext(ctx).Error().
			Err(err).
			Str("message_id", aws.ToString(message.MessageId)).
			Msg("failed to delete message")
		return
	}
	messagesAcked.Inc()
}
