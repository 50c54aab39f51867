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
	"sync"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

const instrumentationName = "github.com/ecodeclub/jobsentry/internal/analysis/query"

// Engine 按照 JobID 缓存分析结果。
// 同一个 JobID 任何时刻最多只有一个加载在进行，
// 成功的结果在 StaleTime 之内直接复用，失败会按照 Retry 的配置自动重试。
// 失败的条目不会自动重新加载，只能等它被淘汰。
// 已经有结果的条目刷新失败的时候保留旧的结果，不会变成失败。
type Engine struct {
	mu      sync.Mutex
	entries map[domain.JobID]*entry
	group   singleflight.Group

	fetcher Fetcher
	cfg     Config
	now     func() time.Time
	logger  *elog.Component
	tracer  trace.Tracer
}

type entry struct {
	status  Status
	data    domain.AnalysisResult
	hasData bool
	err     error
	// updatedAt 是 data 的更新时间，checkedAt 是最近一次加载结束的时间，新鲜度按 checkedAt 算
	updatedAt time.Time
	checkedAt time.Time
	lastUsed  time.Time
	observers int
	// done 在当前这一次加载结束的时候关闭，不在加载中的时候为 nil
	done chan struct{}
}

func NewEngine(fetcher Fetcher, cfg Config) *Engine {
	return &Engine{
		entries: make(map[domain.JobID]*entry),
		fetcher: fetcher,
		cfg:     cfg,
		now:     time.Now,
		logger:  elog.DefaultLogger.With(elog.FieldComponent("analysis-query")),
		tracer:  otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

// Get 返回 key 当前的状态，不会阻塞。
// key 为 nil 的时候直接返回 StatusIdle，也不会触发加载；
// 条目不存在或者已经过期的时候，会在后台开始加载，并且返回 StatusPending。
// 后台加载不受 ctx 取消的影响，只会和 ctx 里面的 span 关联起来。
func (e *Engine) Get(ctx context.Context, key *domain.JobID) Snapshot {
	snap, _ := e.get(ctx, key)
	return snap
}

// Wait 和 Get 一样，但是如果条目正在加载，会一直等到加载结束或者 ctx 结束
func (e *Engine) Wait(ctx context.Context, key *domain.JobID) Snapshot {
	snap, ent := e.get(ctx, key)
	if ent == nil || snap.Status != StatusPending {
		return snap
	}
	e.mu.Lock()
	done := ent.done
	e.mu.Unlock()
	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
		}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return ent.snapshot(*key)
}

func (e *Engine) get(ctx context.Context, key *domain.JobID) (Snapshot, *entry) {
	if key == nil {
		return Snapshot{Status: StatusIdle}, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()
	ent, ok := e.entries[*key]
	if !ok {
		ent = &entry{}
		e.entries[*key] = ent
	}
	ent.lastUsed = now
	if e.shouldFetch(ent, now) {
		e.startFetch(trace.SpanContextFromContext(ctx), *key, ent)
	}
	return ent.snapshot(*key), ent
}

// Peek 只读取，不会触发加载
func (e *Engine) Peek(key domain.JobID) (Snapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ent, ok := e.entries[key]
	if !ok {
		return Snapshot{Key: &key, Status: StatusIdle}, false
	}
	return ent.snapshot(key), true
}

// Observe 标记 key 正在被使用，有观察者的条目不会被淘汰。
// 返回的函数用于取消观察，重复调用是安全的。
func (e *Engine) Observe(key domain.JobID) func() {
	e.mu.Lock()
	ent, ok := e.entries[key]
	if !ok {
		ent = &entry{lastUsed: e.now()}
		e.entries[key] = ent
	}
	ent.observers++
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			ent.observers--
			ent.lastUsed = e.now()
		})
	}
}

// Evict 淘汰没有观察者的条目，返回是否真的淘汰了。
// 正在进行的加载不会被取消，它的结果会被丢弃。
func (e *Engine) Evict(key domain.JobID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	ent, ok := e.entries[key]
	if !ok || ent.observers > 0 {
		return false
	}
	delete(e.entries, key)
	return true
}

// GC 回收没有观察者、不在加载中、并且闲置超过 GCTime 的条目
func (e *Engine) GC() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()
	cnt := 0
	for key, ent := range e.entries {
		if ent.observers > 0 || ent.status == StatusPending {
			continue
		}
		if now.Sub(ent.lastUsed) < e.cfg.GCTime {
			continue
		}
		delete(e.entries, key)
		cnt++
	}
	return cnt
}

func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.entries)
}

func (e *Engine) shouldFetch(ent *entry, now time.Time) bool {
	switch ent.status {
	case StatusIdle:
		return true
	case StatusSuccess:
		return now.Sub(ent.checkedAt) >= e.cfg.StaleTime
	default:
		return false
	}
}

// startFetch 调用方必须持有 e.mu
func (e *Engine) startFetch(origin trace.SpanContext, key domain.JobID, ent *entry) {
	ent.status = StatusPending
	ent.done = make(chan struct{})
	go e.load(origin, key, ent)
}

func (e *Engine) load(origin trace.SpanContext, key domain.JobID, ent *entry) {
	// 加载和发起请求的调用方解耦，调用方放弃了也会把结果写回缓存
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if e.cfg.FetchTimeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), e.cfg.FetchTimeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	defer cancel()
	opts := []trace.SpanStartOption{
		trace.WithNewRoot(),
		trace.WithAttributes(attribute.String("job.id", key.String())),
	}
	if origin.IsValid() {
		opts = append(opts, trace.WithLinks(trace.Link{SpanContext: origin}))
	}
	ctx, span := e.tracer.Start(ctx, "analysis.query.load", opts...)
	defer span.End()

	val, err, shared := e.group.Do(key.String(), func() (any, error) {
		return e.fetchWithRetry(ctx, key)
	})
	res, _ := val.(domain.AnalysisResult)
	span.SetAttributes(attribute.Bool("shared", shared))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()
	ent.checkedAt = now
	switch {
	case err == nil:
		ent.status = StatusSuccess
		ent.data = res
		ent.hasData = true
		ent.err = nil
		ent.updatedAt = now
	case ent.hasData:
		// 刷新失败，继续用旧的结果，过了 StaleTime 再试
		ent.status = StatusSuccess
		ent.err = err
		e.logger.Warn("刷新分析结果失败，继续使用旧的结果",
			elog.String("jobId", key.String()),
			elog.FieldErr(err))
	default:
		ent.status = StatusError
		ent.err = err
	}
	close(ent.done)
	ent.done = nil
}

func (e *Engine) fetchWithRetry(ctx context.Context, key domain.JobID) (domain.AnalysisResult, error) {
	var strategy retry.Strategy
	if e.cfg.Retry.MaxRetries > 0 {
		s, err := retry.NewExponentialBackoffRetryStrategy(e.cfg.Retry.InitialInterval,
			e.cfg.Retry.MaxInterval, e.cfg.Retry.MaxRetries)
		if err != nil {
			return domain.AnalysisResult{}, err
		}
		strategy = s
	}
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		res, err := e.fetcher(ctx, key)
		if err == nil {
			return res, nil
		}
		// 超时了就没必要继续重试了
		if ctx.Err() != nil || strategy == nil {
			return domain.AnalysisResult{}, err
		}
		interval, ok := strategy.Next()
		if !ok {
			return domain.AnalysisResult{}, err
		}
		e.logger.Warn("加载分析结果失败，准备重试",
			elog.String("jobId", key.String()),
			elog.FieldErr(err),
			elog.String("interval", interval.String()))
		if timer == nil {
			timer = time.NewTimer(interval)
		} else {
			timer.Reset(interval)
		}
		select {
		case <-ctx.Done():
			return domain.AnalysisResult{}, err
		case <-timer.C:
		}
	}
}

func (ent *entry) snapshot(key domain.JobID) Snapshot {
	return Snapshot{
		Key:       &key,
		Status:    ent.status,
		Data:      ent.data,
		HasData:   ent.hasData,
		Err:       ent.err,
		UpdatedAt: ent.updatedAt,
	}
}
