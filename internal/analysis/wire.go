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

//go:build wireinject

package analysis

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/job"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/repository"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/service"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
)

func InitModule(ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(wire.Struct(new(Module), "*"),
		InitRemoteClient,
		initQueryConfig,
		initAnalysisCache,
		repository.NewCachedAnalysisRepository,
		initQueryEngine,
		initJobEventProducer,
		initSessionConfig,
		service.NewSessionService,
		web.NewHandler,
		job.NewEvictJob,
	)
	return new(Module), nil
}
