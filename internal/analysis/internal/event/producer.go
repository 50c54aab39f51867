package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -destination=../../mocks/job_event_producer.mock.go -package=analysismocks -typed=true JobEventProducer
type JobEventProducer interface {
	Produce(ctx context.Context, evt JobSubmittedEvent) error
}

type jobEventProducer struct {
	producer mq.Producer
}

func NewJobEventProducer(producer mq.Producer) JobEventProducer {
	return &jobEventProducer{producer: producer}
}

func (p *jobEventProducer) Produce(ctx context.Context, evt JobSubmittedEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{Value: data})
	if err != nil {
		return fmt.Errorf("发送招聘信息提交消息失败: %w", err)
	}
	return nil
}
