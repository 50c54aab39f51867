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

package client

import (
	"context"
	"errors"

	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
)

var (
	// ErrRemoteUnavailable 连不上远端，或者远端暂时不可用
	ErrRemoteUnavailable = errors.New("分析服务不可用")
	// ErrRemoteRejected 远端认为提交的内容不合法
	ErrRemoteRejected = errors.New("分析服务拒绝了提交")
	ErrNotFound       = errors.New("招聘信息不存在")
	// ErrRemoteError 远端分析过程中出错，或者返回了无法识别的结果
	ErrRemoteError = errors.New("分析服务内部错误")
)

//go:generate mockgen -source=./types.go -destination=../../mocks/client.mock.go -package=analysismocks -typed=true Client
type Client interface {
	// Submit 提交招聘信息，返回远端分配的 JobID。调用方不能重试
	Submit(ctx context.Context, job domain.JobSubmission) (domain.JobID, error)
	// Analyze 是幂等的，可以安全重试
	Analyze(ctx context.Context, id domain.JobID) (domain.AnalysisResult, error)
}
