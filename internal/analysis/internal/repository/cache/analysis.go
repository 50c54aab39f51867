package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	"github.com/pkg/errors"
)

var ErrAnalysisNotFound = errors.New("分析结果没找到")

//go:generate mockgen -source=./analysis.go -destination=../../../mocks/analysis_cache.mock.go -package=analysismocks -typed=true AnalysisCache
type AnalysisCache interface {
	Get(ctx context.Context, id domain.JobID) (domain.AnalysisResult, error)
	Set(ctx context.Context, id domain.JobID, res domain.AnalysisResult) error
}

type analysisCache struct {
	ec         ecache.Cache
	expiration time.Duration
}

// NewAnalysisCache expiration 应该和查询引擎的 StaleTime 保持一致，
// 这样多个实例之间共享的结果也满足同样的新鲜度
func NewAnalysisCache(ec ecache.Cache, expiration time.Duration) AnalysisCache {
	return &analysisCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "analysis:",
		},
		expiration: expiration,
	}
}

func (c *analysisCache) Get(ctx context.Context, id domain.JobID) (domain.AnalysisResult, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.AnalysisResult{}, ErrAnalysisNotFound
	}
	if val.Err != nil {
		return domain.AnalysisResult{}, val.Err
	}
	str, err := val.String()
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	var res domain.AnalysisResult
	err = json.Unmarshal([]byte(str), &res)
	return res, errors.Wrap(err, "反序列化分析结果失败")
}

func (c *analysisCache) Set(ctx context.Context, id domain.JobID, res domain.AnalysisResult) error {
	data, err := json.Marshal(res)
	if err != nil {
		return errors.Wrap(err, "序列化分析结果失败")
	}
	return c.ec.Set(ctx, c.key(id), string(data), c.expiration)
}

func (c *analysisCache) key(id domain.JobID) string {
	return fmt.Sprintf("result:%d", uint64(id))
}
