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

package log

import (
	"context"
	"time"

	"github.com/ecodeclub/jobsentry/internal/analysis/internal/client"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

type Client struct {
	client.Client
	logger *elog.Component
}

func NewClient(c client.Client) *Client {
	return &Client{
		Client: c,
		logger: elog.DefaultLogger.With(elog.FieldComponent("analysis-client")),
	}
}

func (c *Client) Submit(ctx context.Context, job domain.JobSubmission) (domain.JobID, error) {
	start := time.Now()
	id, err := c.Client.Submit(ctx, job)
	logger := c.logger.With(elog.String("company", job.CompanyName),
		elog.FieldCost(time.Since(start)))
	if err != nil {
		logger.Error("提交招聘信息失败", elog.FieldErr(err))
		return id, err
	}
	logger.Debug("提交招聘信息成功", elog.String("jobId", id.String()))
	return id, nil
}

func (c *Client) Analyze(ctx context.Context, id domain.JobID) (domain.AnalysisResult, error) {
	start := time.Now()
	res, err := c.Client.Analyze(ctx, id)
	logger := c.logger.With(elog.String("jobId", id.String()),
		elog.FieldCost(time.Since(start)))
	if err != nil {
		logger.Error("分析招聘信息失败", elog.FieldErr(err))
		return res, err
	}
	logger.Debug("分析招聘信息成功",
		elog.Any("fraudulent", res.IsPotentiallyFraudulent),
		elog.Int64("confidence", res.ConfidenceScore))
	return res, nil
}
