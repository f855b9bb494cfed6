package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/dto"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IMailConsumerService interface {
	Consume(ctx context.Context) error
}

type mailConsumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
}

func NewMailConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
) IMailConsumerService {
	return &mailConsumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
	}
}

func (cs *mailConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *mailConsumerService) processMessage(msg *message.Message) {
	var payload dto.SendEmailMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal mail message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	var err error
	switch payload.Kind {
	case dto.MailKindRefundProcessed:
		err = cs.emailService.SendRefundProcessed(payload.ToEmail, payload.CaseNumber, payload.Amount)
	case dto.MailKindCaseReply:
		err = cs.emailService.SendCaseReply(payload.ToEmail, payload.CaseNumber, payload.AuthorName, payload.Preview)
	default:
		log.Printf("[WARN] Unknown mail kind: %s", payload.Kind)
		msg.Ack()
		return
	}

	if err != nil {
		// Email is best-effort. Log and ack rather than retry forever.
		log.Printf("[ERROR] Failed to send %s email to %s: %v", payload.Kind, payload.ToEmail, err)
	}
	msg.Ack()
}
