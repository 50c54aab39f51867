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
	"sync"
	"time"

	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/query"
)

// ErrSessionReset 提交还没返回，会话就被重置了，提交的结果被丢弃
var ErrSessionReset = errors.New("会话已经被重置")

// Session 对应一个用户界面，同一时刻只关注一个 JobID。
//
//	Idle --提交成功--> 分析中 --分析成功--> 已完成
//	分析中 --重试耗尽--> 失败 --Reset--> Idle
//	已完成 --Reset--> Idle
type Session struct {
	ID string

	mu     sync.Mutex
	ctrl   SubmissionController
	engine *query.Engine
	active *domain.JobID
	// release 取消对 active 的观察
	release func()
	// gen 每次切换 active 或者重置都会加一，用来丢弃过期的提交结果
	gen        uint64
	lastAccess time.Time
	now        func() time.Time
}

func newSession(id string, ctrl SubmissionController, engine *query.Engine, now func() time.Time) *Session {
	return &Session{
		ID:         id,
		ctrl:       ctrl,
		engine:     engine,
		now:        now,
		lastAccess: now(),
	}
}

// Submit 提交成功之后，会话开始关注新的 JobID，之前的 JobID 会被放弃
func (s *Session) Submit(ctx context.Context, input domain.RawFormInput) (domain.JobID, error) {
	s.mu.Lock()
	gen := s.gen
	s.lastAccess = s.now()
	s.mu.Unlock()

	id, err := s.ctrl.SubmitJob(ctx, input)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return id, ErrSessionReset
	}
	s.activate(&id)
	// 立刻开始加载，不用等第一次查看
	s.engine.Get(ctx, &id)
	return id, nil
}

// View 返回当前关注的 JobID 的展示状态，wait 为 true 的时候会等待加载结束
func (s *Session) View(ctx context.Context, wait bool) domain.ViewState {
	s.mu.Lock()
	key := s.active
	s.lastAccess = s.now()
	s.mu.Unlock()

	var snap query.Snapshot
	if wait {
		snap = s.engine.Wait(ctx, key)
	} else {
		snap = s.engine.Get(ctx, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !sameKey(snap.Key, s.active) {
		// 等待期间会话切换到了别的 JobID，旧的结果不能展示出来
		snap = s.engine.Get(ctx, s.active)
	}
	return Project(snap)
}

// Active 当前关注的 JobID，没有的时候返回 nil
func (s *Session) Active() *domain.JobID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil
	}
	id := *s.active
	return &id
}

// Reset 回到 Idle，放弃当前的 JobID
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAccess = s.now()
	s.activate(nil)
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}

// activate 调用方必须持有 s.mu
func (s *Session) activate(id *domain.JobID) {
	prev := s.active
	if s.release != nil {
		s.release()
		s.release = nil
	}
	s.active = id
	s.gen++
	if id != nil {
		s.release = s.engine.Observe(*id)
	}
	if prev != nil && !sameKey(prev, id) {
		// 没有其他人在用的话，旧的条目可以直接淘汰
		s.engine.Evict(*prev)
	}
}

func sameKey(a, b *domain.JobID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
