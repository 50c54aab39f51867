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

package job

import (
	"context"

	"github.com/ecodeclub/jobsentry/internal/analysis/internal/query"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*EvictJob)(nil)

// EvictJob 先清理闲置的会话，再回收没有人关注的缓存条目。
// 顺序不能反过来，会话清理之后它关注的条目才能被回收。
type EvictJob struct {
	svc    service.SessionService
	engine *query.Engine
	logger *elog.Component
}

func NewEvictJob(svc service.SessionService, engine *query.Engine) *EvictJob {
	return &EvictJob{
		svc:    svc,
		engine: engine,
		logger: elog.DefaultLogger,
	}
}

func (j *EvictJob) Name() string {
	return "AnalysisEvictJob"
}

func (j *EvictJob) Run(ctx context.Context) error {
	sessions := j.svc.Sweep(ctx)
	entries := j.engine.GC()
	j.logger.Debug("清理分析会话和缓存",
		elog.Int("sessions", sessions),
		elog.Int("entries", entries),
		elog.Int("remaining", j.engine.Len()))
	return ctx.Err()
}
