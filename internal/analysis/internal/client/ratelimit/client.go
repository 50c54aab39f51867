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

package ratelimit

import (
	"context"
	"fmt"

	"github.com/ecodeclub/jobsentry/internal/analysis/internal/client"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	"golang.org/x/time/rate"
)

// Client 限制发往远端分析服务的请求速率，排队等待而不是直接拒绝
type Client struct {
	client.Client
	limiter *rate.Limiter
}

// NewClient qps <= 0 的时候不限流
func NewClient(c client.Client, qps float64, burst int) *Client {
	limit := rate.Inf
	if qps > 0 {
		limit = rate.Limit(qps)
	}
	if burst <= 0 {
		burst = 1
	}
	return &Client{
		Client:  c,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (c *Client) Submit(ctx context.Context, job domain.JobSubmission) (domain.JobID, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("%w: 限流等待失败 %w", client.ErrRemoteUnavailable, err)
	}
	return c.Client.Submit(ctx, job)
}

func (c *Client) Analyze(ctx context.Context, id domain.JobID) (domain.AnalysisResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: 限流等待失败 %w", client.ErrRemoteUnavailable, err)
	}
	return c.Client.Analyze(ctx, id)
}
