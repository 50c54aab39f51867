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

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/jobsentry/internal/analysis/internal/client"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	"github.com/go-resty/resty/v2"
)

type Config struct {
	Addr    string        `yaml:"addr"`
	Timeout time.Duration `yaml:"timeout"`
}

// Client 通过 HTTP 调用远端的分析服务
type Client struct {
	rc *resty.Client
}

var _ client.Client = (*Client)(nil)

func NewClient(cfg Config) *Client {
	rc := resty.New().
		SetBaseURL(cfg.Addr).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}
	return &Client{rc: rc}
}

// NewClientWithResty 方便测试替换底层的 resty.Client
func NewClientWithResty(rc *resty.Client) *Client {
	return &Client{rc: rc}
}

func (c *Client) Submit(ctx context.Context, job domain.JobSubmission) (domain.JobID, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(newSubmitReq(job)).
		Post("/jobs")
	if err != nil {
		return 0, fmt.Errorf("%w: %w", client.ErrRemoteUnavailable, err)
	}
	if err = c.checkStatus(resp, client.ErrRemoteRejected); err != nil {
		return 0, err
	}
	var res submitResp
	if err = json.Unmarshal(resp.Body(), &res); err != nil {
		return 0, fmt.Errorf("%w: 解析提交结果失败 %w", client.ErrRemoteError, err)
	}
	return domain.JobID(res.JobID), nil
}

func (c *Client) Analyze(ctx context.Context, id domain.JobID) (domain.AnalysisResult, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("id", id.String()).
		Get("/jobs/{id}/analysis")
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: %w", client.ErrRemoteUnavailable, err)
	}
	if err = c.checkStatus(resp, client.ErrRemoteError); err != nil {
		return domain.AnalysisResult{}, err
	}
	var res analysisResult
	if err = json.Unmarshal(resp.Body(), &res); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: 解析分析结果失败 %w", client.ErrRemoteError, err)
	}
	result := res.toDomain()
	if !result.ConfidenceValid() {
		return domain.AnalysisResult{}, fmt.Errorf("%w: 置信度超出范围 %d", client.ErrRemoteError, result.ConfidenceScore)
	}
	return result, nil
}

// checkStatus 把 HTTP 状态码翻译成 client 包定义的错误，
// badRequest 是 400 / 422 对应的错误
func (c *Client) checkStatus(resp *resty.Response, badRequest error) error {
	code := resp.StatusCode()
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: status %d", badRequest, code)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: status %d", client.ErrNotFound, code)
	case code == http.StatusBadGateway,
		code == http.StatusServiceUnavailable,
		code == http.StatusGatewayTimeout:
		return fmt.Errorf("%w: status %d", client.ErrRemoteUnavailable, code)
	default:
		return fmt.Errorf("%w: status %d", client.ErrRemoteError, code)
	}
}
