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
	"testing"
	"time"

	"github.com/ecodeclub/jobsentry/internal/analysis/internal/client"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/event"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/repository"
	analysismocks "github.com/ecodeclub/jobsentry/internal/analysis/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validInput() domain.RawFormInput {
	return domain.RawFormInput{
		Title:        "Backend Engineer",
		Description:  "Build APIs",
		CompanyName:  "Acme",
		ContactEmail: "hr@acme.com",
		Salary:       "120000",
	}
}

func TestSubmissionController_SubmitJob(t *testing.T) {
	testCases := []struct {
		name   string
		mock   func(ctrl *gomock.Controller) (client.Client, event.JobEventProducer)
		input  func() domain.RawFormInput
		wantID domain.JobID
		// wantErr 为 nil 表示成功
		wantErr error
	}{
		{
			name: "提交成功",
			mock: func(ctrl *gomock.Controller) (client.Client, event.JobEventProducer) {
				c := analysismocks.NewMockClient(ctrl)
				p := analysismocks.NewMockJobEventProducer(ctrl)
				c.EXPECT().Submit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, job domain.JobSubmission) (domain.JobID, error) {
						assert.Equal(t, "Acme", job.CompanyName)
						require.NotNil(t, job.Salary)
						assert.Equal(t, int64(120000), *job.Salary)
						return 42, nil
					}).Times(1)
				p.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.JobSubmittedEvent) error {
						assert.Equal(t, uint64(42), evt.JobID)
						assert.True(t, evt.HasSalary)
						return nil
					})
				return c, p
			},
			input:  validInput,
			wantID: 42,
		},
		{
			name: "发送事件失败不影响提交",
			mock: func(ctrl *gomock.Controller) (client.Client, event.JobEventProducer) {
				c := analysismocks.NewMockClient(ctrl)
				p := analysismocks.NewMockJobEventProducer(ctrl)
				c.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(domain.JobID(7), nil)
				p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq down"))
				return c, p
			},
			input:  validInput,
			wantID: 7,
		},
		{
			name: "标题为空",
			mock: func(ctrl *gomock.Controller) (client.Client, event.JobEventProducer) {
				return analysismocks.NewMockClient(ctrl), analysismocks.NewMockJobEventProducer(ctrl)
			},
			input: func() domain.RawFormInput {
				in := validInput()
				in.Title = ""
				return in
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "邮箱非法",
			mock: func(ctrl *gomock.Controller) (client.Client, event.JobEventProducer) {
				return analysismocks.NewMockClient(ctrl), analysismocks.NewMockJobEventProducer(ctrl)
			},
			input: func() domain.RawFormInput {
				in := validInput()
				in.ContactEmail = "not-an-email"
				return in
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "薪资为负数",
			mock: func(ctrl *gomock.Controller) (client.Client, event.JobEventProducer) {
				return analysismocks.NewMockClient(ctrl), analysismocks.NewMockJobEventProducer(ctrl)
			},
			input: func() domain.RawFormInput {
				in := validInput()
				in.Salary = "-5"
				return in
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "薪资不是数字",
			mock: func(ctrl *gomock.Controller) (client.Client, event.JobEventProducer) {
				return analysismocks.NewMockClient(ctrl), analysismocks.NewMockJobEventProducer(ctrl)
			},
			input: func() domain.RawFormInput {
				in := validInput()
				in.Salary = "foo"
				return in
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "远端拒绝",
			mock: func(ctrl *gomock.Controller) (client.Client, event.JobEventProducer) {
				c := analysismocks.NewMockClient(ctrl)
				c.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(domain.JobID(0), client.ErrRemoteRejected).Times(1)
				return c, analysismocks.NewMockJobEventProducer(ctrl)
			},
			input:   validInput,
			wantErr: client.ErrRemoteRejected,
		},
		{
			name: "远端不可用，不重试",
			mock: func(ctrl *gomock.Controller) (client.Client, event.JobEventProducer) {
				c := analysismocks.NewMockClient(ctrl)
				c.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(domain.JobID(0), client.ErrRemoteUnavailable).Times(1)
				return c, analysismocks.NewMockJobEventProducer(ctrl)
			},
			input:   validInput,
			wantErr: client.ErrRemoteUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c, p := tc.mock(ctrl)
			repo := repository.NewCachedAnalysisRepository(c, analysismocks.NewMockAnalysisCache(ctrl))
			sc := NewSubmissionController(repo, p)
			id, err := sc.SubmitJob(context.Background(), tc.input())
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantID, id)
			assert.False(t, sc.Submitting())
		})
	}
}

func TestSubmissionController_AlreadySubmitting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := analysismocks.NewMockClient(ctrl)
	p := analysismocks.NewMockJobEventProducer(ctrl)
	release := make(chan struct{})
	c.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, job domain.JobSubmission) (domain.JobID, error) {
			<-release
			return 42, nil
		}).Times(1)
	p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	repo := repository.NewCachedAnalysisRepository(c, analysismocks.NewMockAnalysisCache(ctrl))
	sc := NewSubmissionController(repo, p)

	type result struct {
		id  domain.JobID
		err error
	}
	first := make(chan result, 1)
	go func() {
		id, err := sc.SubmitJob(context.Background(), validInput())
		first <- result{id: id, err: err}
	}()
	require.Eventually(t, sc.Submitting, time.Second, time.Millisecond)

	_, err := sc.SubmitJob(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrAlreadySubmitting)

	// 非法输入优先报告校验错误
	in := validInput()
	in.ContactEmail = "foo"
	_, err = sc.SubmitJob(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	close(release)
	res := <-first
	require.NoError(t, res.err)
	assert.Equal(t, domain.JobID(42), res.id)
	assert.False(t, sc.Submitting())
}
