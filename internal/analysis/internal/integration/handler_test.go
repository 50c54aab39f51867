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

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/client"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/errs"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/event"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/query"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/repository"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/repository/cache"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/service"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/web"
	analysismocks "github.com/ecodeclub/jobsentry/internal/analysis/mocks"
	"github.com/ecodeclub/jobsentry/internal/test"
	testioc "github.com/ecodeclub/jobsentry/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	client   *analysismocks.MockClient
	consumer mq.Consumer
	server   *egin.Component
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
}

func (s *HandlerTestSuite) SetupTest() {
	t := s.T()
	s.ctrl = gomock.NewController(t)
	s.client = analysismocks.NewMockClient(s.ctrl)
	ac := analysismocks.NewMockAnalysisCache(s.ctrl)
	ac.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(domain.AnalysisResult{}, cache.ErrAnalysisNotFound).AnyTimes()
	ac.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	q := testioc.InitMQ()
	consumer, err := q.Consumer(event.JobSubmittedTopic, "test")
	require.NoError(t, err)
	s.consumer = consumer
	producer, err := q.Producer(event.JobSubmittedTopic)
	require.NoError(t, err)

	repo := repository.NewCachedAnalysisRepository(s.client, ac)
	engine := query.NewEngine(repo.FindAnalysis, query.Config{
		StaleTime:    5 * time.Minute,
		GCTime:       5 * time.Minute,
		FetchTimeout: 5 * time.Second,
		Retry: query.RetryConfig{
			MaxRetries:      2,
			InitialInterval: time.Millisecond,
			MaxInterval:     2 * time.Millisecond,
		},
	})
	svc := service.NewSessionService(repo, event.NewJobEventProducer(producer), engine,
		service.SessionConfig{IdleTimeout: 30 * time.Minute})
	hdl := web.NewHandler(svc)
	server := egin.Load("server").Build()
	hdl.PublicRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestSubmit() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		req      func(sid string) web.SubmitReq
		wantCode int
		wantRes  test.Result[json.RawMessage]
	}{
		{
			name: "提交成功",
			before: func(t *testing.T) {
				s.client.EXPECT().Submit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, job domain.JobSubmission) (domain.JobID, error) {
						assert.Equal(t, domain.JobSubmission{
							Title:        "Backend Engineer",
							Description:  "Build APIs",
							CompanyName:  "Acme",
							ContactEmail: "hr@acme.com",
							Salary:       ekit.ToPtr[int64](120000),
						}, job)
						return 42, nil
					})
				s.client.EXPECT().Analyze(gomock.Any(), domain.JobID(42)).
					Return(domain.AnalysisResult{Reasons: []string{}, ConfidenceScore: 80}, nil).AnyTimes()
			},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				msg, err := s.consumer.Consume(ctx)
				require.NoError(t, err)
				var evt event.JobSubmittedEvent
				require.NoError(t, json.Unmarshal(msg.Value, &evt))
				assert.Equal(t, uint64(42), evt.JobID)
				assert.Equal(t, "Acme", evt.CompanyName)
				assert.True(t, evt.HasSalary)
			},
			req: func(sid string) web.SubmitReq {
				return validReq(sid)
			},
			wantCode: 200,
			wantRes: test.Result[json.RawMessage]{
				Data: json.RawMessage(`{"jobId":"42"}`),
			},
		},
		{
			name:   "邮箱非法",
			before: func(t *testing.T) {},
			after:  func(t *testing.T) {},
			req: func(sid string) web.SubmitReq {
				req := validReq(sid)
				req.ContactEmail = "foo"
				return req
			},
			wantCode: 200,
			wantRes: test.Result[json.RawMessage]{
				Code: errs.InvalidInput.Code,
				Msg:  domain.MsgInvalidEmail,
				Data: json.RawMessage(`{"field":"contactEmail","rule":"contact_email"}`),
			},
		},
		{
			name:   "缺少标题",
			before: func(t *testing.T) {},
			after:  func(t *testing.T) {},
			req: func(sid string) web.SubmitReq {
				req := validReq(sid)
				req.Title = "   "
				return req
			},
			wantCode: 200,
			wantRes: test.Result[json.RawMessage]{
				Code: errs.InvalidInput.Code,
				Msg:  domain.MsgRequiredFields,
				Data: json.RawMessage(`{"field":"title","rule":"required"}`),
			},
		},
		{
			name:   "薪资不是整数",
			before: func(t *testing.T) {},
			after:  func(t *testing.T) {},
			req: func(sid string) web.SubmitReq {
				req := validReq(sid)
				req.Salary = "12.5"
				return req
			},
			wantCode: 200,
			wantRes: test.Result[json.RawMessage]{
				Code: errs.InvalidInput.Code,
				Msg:  domain.MsgInvalidSalary,
				Data: json.RawMessage(`{"field":"salary","rule":"integer"}`),
			},
		},
		{
			name: "远端拒绝",
			before: func(t *testing.T) {
				s.client.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(domain.JobID(0), client.ErrRemoteRejected)
			},
			after: func(t *testing.T) {},
			req: func(sid string) web.SubmitReq {
				return validReq(sid)
			},
			wantCode: 200,
			wantRes: test.Result[json.RawMessage]{
				Code: errs.RemoteFailure.Code,
				Msg:  "Failed to submit job posting",
			},
		},
		{
			name:   "会话不存在",
			before: func(t *testing.T) {},
			after:  func(t *testing.T) {},
			req: func(sid string) web.SubmitReq {
				return validReq("unknown")
			},
			wantCode: 200,
			wantRes: test.Result[json.RawMessage]{
				Code: errs.SessionNotFound.Code,
				Msg:  errs.SessionNotFound.Msg,
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			sid := s.open(t)
			recorder := postJSON[json.RawMessage](t, s.server, "/analysis/submit", tc.req(sid))
			require.Equal(t, tc.wantCode, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantRes.Code, res.Code)
			assert.Equal(t, tc.wantRes.Msg, res.Msg)
			if tc.wantRes.Data != nil {
				assert.JSONEq(t, string(tc.wantRes.Data), string(res.Data))
			}
			tc.after(t)
		})
	}
}

func (s *HandlerTestSuite) TestViewSucceeded() {
	t := s.T()
	s.client.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(domain.JobID(7), nil)
	s.client.EXPECT().Analyze(gomock.Any(), domain.JobID(7)).Return(domain.AnalysisResult{
		IsPotentiallyFraudulent: true,
		Reasons:                 []string{"Unrealistic salary"},
		ConfidenceScore:         87,
		CompanyInfo: &domain.CompanyInfo{
			Name:       "Acme",
			IsVerified: true,
			Industry:   "Software",
		},
		VerifiedEmailDomain: ekit.ToPtr("acme.com"),
	}, nil)

	sid := s.open(t)
	recorder := s.post(t, "/analysis/view", web.ViewReq{SID: sid})
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, web.ViewVO{Status: "idle"}, recorder.MustScan().Data)

	s.post(t, "/analysis/submit", validReq(sid))
	recorder = s.post(t, "/analysis/view", web.ViewReq{SID: sid, Wait: true})
	require.Equal(t, 200, recorder.Code)
	vo := recorder.MustScan().Data
	assert.Equal(t, "success", vo.Status)
	assert.Equal(t, "7", vo.JobID)
	require.NotNil(t, vo.Result)
	assert.Equal(t, "Potentially Fake", vo.Result.Verdict)
	assert.Equal(t, "Confidence Score: 87%", vo.Result.ConfidenceLabel)
	assert.Equal(t, []string{"Unrealistic salary"}, vo.Result.Reasons)
	require.NotNil(t, vo.Result.CompanyInfo)
	assert.Equal(t, "Acme", vo.Result.CompanyInfo.Name)
	assert.Equal(t, "This company is verified in our database and appears to be a legitimate organization.",
		vo.Result.CompanyInfo.Note)
	require.NotNil(t, vo.Result.VerifiedEmailDomain)
	assert.Equal(t, "acme.com", *vo.Result.VerifiedEmailDomain)

	// 重置之后回到初始状态
	recorder = s.post(t, "/analysis/reset", web.SessionReq{SID: sid})
	require.Equal(t, 200, recorder.Code)
	recorder = s.post(t, "/analysis/view", web.ViewReq{SID: sid})
	assert.Equal(t, web.ViewVO{Status: "idle"}, recorder.MustScan().Data)
}

func (s *HandlerTestSuite) TestViewFailed() {
	t := s.T()
	s.client.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(domain.JobID(8), nil)
	s.client.EXPECT().Analyze(gomock.Any(), domain.JobID(8)).
		Return(domain.AnalysisResult{}, client.ErrRemoteUnavailable).Times(3)

	sid := s.open(t)
	s.post(t, "/analysis/submit", validReq(sid))
	recorder := s.post(t, "/analysis/view", web.ViewReq{SID: sid, Wait: true})
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, web.ViewVO{
		Status: "error",
		JobID:  "8",
		Error:  service.MsgAnalysisFailed,
	}, recorder.MustScan().Data)
}

func (s *HandlerTestSuite) TestResetUnknownSession() {
	t := s.T()
	recorder := s.post(t, "/analysis/reset", web.SessionReq{SID: "unknown"})
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, errs.SessionNotFound.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) open(t *testing.T) string {
	req, err := http.NewRequest(http.MethodPost, "/analysis/session", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.SessionVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	sid := recorder.MustScan().Data.SID
	require.NotEmpty(t, sid)
	return sid
}

func (s *HandlerTestSuite) post(t *testing.T, path string, body any) test.JSONResponseRecorder[web.ViewVO] {
	return postJSON[web.ViewVO](t, s.server, path, body)
}

func postJSON[T any](t *testing.T, server *egin.Component, path string, body any) test.JSONResponseRecorder[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	return recorder
}

func validReq(sid string) web.SubmitReq {
	return web.SubmitReq{
		SID:          sid,
		Title:        "Backend Engineer",
		Description:  "Build APIs",
		CompanyName:  "Acme",
		ContactEmail: "hr@acme.com",
		Salary:       "120000",
	}
}
