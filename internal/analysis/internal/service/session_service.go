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
	"time"

	"github.com/ecodeclub/ekit/syncx"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/event"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/query"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var ErrSessionNotFound = errors.New("会话不存在")

type SessionConfig struct {
	// IdleTimeout 会话闲置超过这个时间就会被清理
	IdleTimeout time.Duration `yaml:"idleTimeout"`
}

type SessionService interface {
	Open(ctx context.Context) string
	Submit(ctx context.Context, sid string, input domain.RawFormInput) (domain.JobID, error)
	View(ctx context.Context, sid string, wait bool) (domain.ViewState, error)
	Reset(ctx context.Context, sid string) error
	// Sweep 清理闲置的会话，返回清理的数量
	Sweep(ctx context.Context) int
}

type sessionService struct {
	sessions syncx.Map[string, *Session]
	repo     repository.AnalysisRepository
	producer event.JobEventProducer
	engine   *query.Engine
	cfg      SessionConfig
	now      func() time.Time
	logger   *elog.Component
}

func NewSessionService(repo repository.AnalysisRepository,
	producer event.JobEventProducer,
	engine *query.Engine,
	cfg SessionConfig) SessionService {
	return &sessionService{
		repo:     repo,
		producer: producer,
		engine:   engine,
		cfg:      cfg,
		now:      time.Now,
		logger:   elog.DefaultLogger,
	}
}

func (svc *sessionService) Open(ctx context.Context) string {
	sid := shortuuid.New()
	// 每个会话有自己的提交控制器，互不影响
	sess := newSession(sid, NewSubmissionController(svc.repo, svc.producer), svc.engine, svc.now)
	svc.sessions.Store(sid, sess)
	return sid
}

func (svc *sessionService) Submit(ctx context.Context, sid string, input domain.RawFormInput) (domain.JobID, error) {
	sess, err := svc.get(sid)
	if err != nil {
		return 0, err
	}
	return sess.Submit(ctx, input)
}

func (svc *sessionService) View(ctx context.Context, sid string, wait bool) (domain.ViewState, error) {
	sess, err := svc.get(sid)
	if err != nil {
		return nil, err
	}
	state := sess.View(ctx, wait)
	if failed, ok := state.(domain.Failed); ok {
		svc.logger.Warn("分析失败",
			elog.String("sid", sid),
			elog.String("jobId", failed.JobID.String()),
			elog.FieldErr(failed.Cause))
	}
	return state, nil
}

func (svc *sessionService) Reset(ctx context.Context, sid string) error {
	sess, err := svc.get(sid)
	if err != nil {
		return err
	}
	sess.Reset()
	return nil
}

func (svc *sessionService) Sweep(ctx context.Context) int {
	if svc.cfg.IdleTimeout <= 0 {
		return 0
	}
	now := svc.now()
	cnt := 0
	svc.sessions.Range(func(sid string, sess *Session) bool {
		if ctx.Err() != nil {
			return false
		}
		if now.Sub(sess.idleSince()) < svc.cfg.IdleTimeout {
			return true
		}
		sess.Reset()
		svc.sessions.Delete(sid)
		cnt++
		return true
	})
	return cnt
}

func (svc *sessionService) get(sid string) (*Session, error) {
	sess, ok := svc.sessions.Load(sid)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}
