// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/jobsentry/internal/analysis/internal/client"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opSubmit  = "submit"
	opAnalyze = "analyze"
)

type Client struct {
	client.Client
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

func NewClient(c client.Client, reg prometheus.Registerer) *Client {
	factory := promauto.With(reg)
	return &Client{
		Client: c,
		summaryVec: factory.NewSummaryVec(prometheus.SummaryOpts{
			Name: "analysis_remote_duration_seconds",
			Help: "远端分析服务调用耗时",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, []string{"op"}),
		counterVec: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "analysis_remote_requests_total",
			Help: "远端分析服务调用次数",
		}, []string{"op", "result"}),
	}
}

func (c *Client) Submit(ctx context.Context, job domain.JobSubmission) (domain.JobID, error) {
	start := time.Now()
	id, err := c.Client.Submit(ctx, job)
	c.observe(opSubmit, start, err)
	return id, err
}

func (c *Client) Analyze(ctx context.Context, id domain.JobID) (domain.AnalysisResult, error) {
	start := time.Now()
	res, err := c.Client.Analyze(ctx, id)
	c.observe(opAnalyze, start, err)
	return res, err
}

func (c *Client) observe(op string, start time.Time, err error) {
	c.summaryVec.WithLabelValues(op).Observe(time.Since(start).Seconds())
	c.counterVec.WithLabelValues(op, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, client.ErrRemoteUnavailable):
		return "unavailable"
	case errors.Is(err, client.ErrRemoteRejected):
		return "rejected"
	case errors.Is(err, client.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
