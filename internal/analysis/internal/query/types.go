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

package query

import (
	"context"
	"time"

	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
)

type Status uint8

const (
	// StatusIdle 没有 key，或者 key 对应的条目还没开始加载
	StatusIdle Status = iota
	StatusPending
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Snapshot 某一时刻缓存条目的只读副本
type Snapshot struct {
	// Key 为 nil 的时候，Status 一定是 StatusIdle
	Key    *domain.JobID
	Status Status
	Data   domain.AnalysisResult
	// HasData 至少成功加载过一次。刷新的时候 Status 是 StatusPending，但是 Data 依旧可用
	HasData bool
	// Err 最近一次加载的错误。HasData 为 true 的时候，它只说明刷新失败了
	Err       error
	UpdatedAt time.Time
}

// Fetcher 真正去加载分析结果，必须是幂等的
type Fetcher func(ctx context.Context, id domain.JobID) (domain.AnalysisResult, error)

type Config struct {
	// StaleTime 成功的结果在这段时间内是新鲜的，不会重新加载
	StaleTime time.Duration `yaml:"staleTime"`
	// GCTime 没有观察者的条目闲置超过这段时间就会被回收
	GCTime time.Duration `yaml:"gcTime"`
	// FetchTimeout 一次加载（包含全部重试）的超时时间
	FetchTimeout time.Duration `yaml:"fetchTimeout"`
	Retry        RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxRetries      int32         `yaml:"maxRetries"`
	InitialInterval time.Duration `yaml:"initialInterval"`
	MaxInterval     time.Duration `yaml:"maxInterval"`
}

func DefaultConfig() Config {
	return Config{
		StaleTime:    5 * time.Minute,
		GCTime:       5 * time.Minute,
		FetchTimeout: 2 * time.Minute,
		Retry: RetryConfig{
			MaxRetries:      2,
			InitialInterval: time.Second,
			MaxInterval:     30 * time.Second,
		},
	}
}
