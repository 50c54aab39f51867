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

package analysis

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/client"
	httpclient "github.com/ecodeclub/jobsentry/internal/analysis/internal/client/http"
	logclient "github.com/ecodeclub/jobsentry/internal/analysis/internal/client/log"
	metricsclient "github.com/ecodeclub/jobsentry/internal/analysis/internal/client/metrics"
	ratelimitclient "github.com/ecodeclub/jobsentry/internal/analysis/internal/client/ratelimit"
	traceclient "github.com/ecodeclub/jobsentry/internal/analysis/internal/client/trace"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/event"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/query"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/repository"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/repository/cache"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	clientOnce = &sync.Once{}
	remote     client.Client
)

// InitRemoteClient 远端分析服务的客户端，整个进程只有一个，
// 这样限流和指标都是全局的
func InitRemoteClient() client.Client {
	clientOnce.Do(func() {
		type Config struct {
			Addr    string        `yaml:"addr"`
			Timeout time.Duration `yaml:"timeout"`
			QPS     float64       `yaml:"qps"`
			Burst   int           `yaml:"burst"`
		}
		cfg := Config{
			Timeout: 10 * time.Second,
			Burst:   1,
		}
		err := econf.UnmarshalKey("analysis.remote", &cfg)
		if err != nil {
			panic(err)
		}
		base := httpclient.NewClient(httpclient.Config{
			Addr:    cfg.Addr,
			Timeout: cfg.Timeout,
		})
		remote = newRemoteClient(base, cfg.QPS, cfg.Burst,
			prometheus.DefaultRegisterer, otel.GetTracerProvider())
	})
	return remote
}

// newRemoteClient 指标在限流里面，耗时只统计真正调用远端的时间；
// span 在限流外面，排队的时间也能在链路上看到
func newRemoteClient(base client.Client, qps float64, burst int,
	reg prometheus.Registerer, tp trace.TracerProvider) client.Client {
	var c client.Client = metricsclient.NewClient(base, reg)
	c = ratelimitclient.NewClient(c, qps, burst)
	c = traceclient.NewClient(c, tp)
	return logclient.NewClient(c)
}

func initQueryConfig() query.Config {
	cfg := query.DefaultConfig()
	err := econf.UnmarshalKey("analysis.query", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

// 缓存的有效期和新鲜时间保持一致
func initAnalysisCache(ec ecache.Cache, cfg query.Config) cache.AnalysisCache {
	return cache.NewAnalysisCache(ec, cfg.StaleTime)
}

func initQueryEngine(repo repository.AnalysisRepository, cfg query.Config) *query.Engine {
	return query.NewEngine(repo.FindAnalysis, cfg)
}

func initJobEventProducer(q mq.MQ) event.JobEventProducer {
	producer, err := q.Producer(event.JobSubmittedTopic)
	if err != nil {
		panic(err)
	}
	return event.NewJobEventProducer(producer)
}

func initSessionConfig() service.SessionConfig {
	cfg := service.SessionConfig{IdleTimeout: 30 * time.Minute}
	err := econf.UnmarshalKey("analysis.session", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
