package mqx

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestTraceMQ_Producer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, "job_analysis_events", 1))
	consumer, err := q.Consumer("job_analysis_events", "test")
	require.NoError(t, err)
	producer, err := NewTraceMQ(q, tp).Producer("job_analysis_events")
	require.NoError(t, err)

	_, err = producer.Produce(ctx, &mq.Message{Value: []byte(`{"jobId":1}`)})
	require.NoError(t, err)
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"jobId":1}`, string(msg.Value))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "mq.produce", span.Name())
	assert.Equal(t, trace.SpanKindProducer, span.SpanKind())
	assert.Contains(t, span.Attributes(), attribute.String("messaging.destination.name", "job_analysis_events"))
	assert.Contains(t, span.Attributes(), attribute.Int("messaging.message.body.size", 11))
}
