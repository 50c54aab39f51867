package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/jobsentry/internal/analysis/internal/client"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
)

type AnalysisRepository interface {
	// Submit 直接交给远端，不做任何缓存
	Submit(ctx context.Context, job domain.JobSubmission) (domain.JobID, error)
	// FindAnalysis 优先从共享缓存读取，读不到再请求远端
	FindAnalysis(ctx context.Context, id domain.JobID) (domain.AnalysisResult, error)
}

type CachedAnalysisRepository struct {
	client client.Client
	cache  cache.AnalysisCache
	logger *elog.Component
}

func NewCachedAnalysisRepository(c client.Client, ac cache.AnalysisCache) AnalysisRepository {
	return &CachedAnalysisRepository{
		client: c,
		cache:  ac,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedAnalysisRepository) Submit(ctx context.Context, job domain.JobSubmission) (domain.JobID, error) {
	return repo.client.Submit(ctx, job)
}

func (repo *CachedAnalysisRepository) FindAnalysis(ctx context.Context, id domain.JobID) (domain.AnalysisResult, error) {
	res, err := repo.cache.Get(ctx, id)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, cache.ErrAnalysisNotFound) {
		// 缓存出问题不影响主流程
		repo.logger.Warn("读取分析结果缓存失败",
			elog.String("jobId", id.String()), elog.FieldErr(err))
	}
	res, err = repo.client.Analyze(ctx, id)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	if er := repo.cache.Set(ctx, id, res); er != nil {
		repo.logger.Warn("回写分析结果缓存失败",
			elog.String("jobId", id.String()), elog.FieldErr(er))
	}
	return res, nil
}
