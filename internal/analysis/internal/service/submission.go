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

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/event"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var ErrAlreadySubmitting = errors.New("已经有一个提交正在进行")

type SubmissionController interface {
	// SubmitJob 校验表单并提交给远端，失败不会重试。
	// 同一个 SubmissionController 同一时刻只允许一个提交。
	SubmitJob(ctx context.Context, input domain.RawFormInput) (domain.JobID, error)
	Submitting() bool
}

type submissionController struct {
	repo     repository.AnalysisRepository
	producer event.JobEventProducer
	inFlight atomic.Bool
	logger   *elog.Component
}

func NewSubmissionController(repo repository.AnalysisRepository,
	producer event.JobEventProducer) SubmissionController {
	return &submissionController{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *submissionController) SubmitJob(ctx context.Context, input domain.RawFormInput) (domain.JobID, error) {
	job, err := input.Submission()
	if err != nil {
		return 0, err
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return 0, ErrAlreadySubmitting
	}
	defer s.inFlight.Store(false)

	id, err := s.repo.Submit(ctx, job)
	if err != nil {
		return 0, err
	}
	s.publish(ctx, id, job)
	return id, nil
}

func (s *submissionController) Submitting() bool {
	return s.inFlight.Load()
}

// publish 通知失败只记录日志，不影响提交结果
func (s *submissionController) publish(ctx context.Context, id domain.JobID, job domain.JobSubmission) {
	evt := event.NewJobSubmittedEvent(id, job, time.Now().UnixMilli())
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送招聘信息提交事件失败",
			elog.FieldErr(err),
			elog.String("jobId", id.String()))
	}
}
