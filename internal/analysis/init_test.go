package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	analysismocks "github.com/ecodeclub/jobsentry/internal/analysis/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
)

func TestNewRemoteClient_DurationExcludesQueueing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	base := analysismocks.NewMockClient(ctrl)
	base.EXPECT().Analyze(gomock.Any(), domain.JobID(1)).
		Return(domain.AnalysisResult{ConfidenceScore: 10}, nil).Times(2)

	reg := prometheus.NewRegistry()
	// 每秒 5 个令牌，第二次调用要排队大约 200ms
	c := newRemoteClient(base, 5, 1, reg, noop.NewTracerProvider())
	start := time.Now()
	for i := 0; i < 2; i++ {
		res, err := c.Analyze(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(10), res.ConfidenceScore)
	}
	require.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)
	found := false
	for _, mf := range families {
		if mf.GetName() != "analysis_remote_duration_seconds" {
			continue
		}
		found = true
		require.Len(t, mf.GetMetric(), 1)
		summary := mf.GetMetric()[0].GetSummary()
		assert.Equal(t, uint64(2), summary.GetSampleCount())
		assert.Less(t, summary.GetSampleSum(), 0.1)
	}
	assert.True(t, found)
}
