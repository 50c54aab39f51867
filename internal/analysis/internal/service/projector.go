package service

import (
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/query"
)

const MsgAnalysisFailed = "An error occurred while analyzing the job posting."

// Project 把缓存条目的快照转换成展示层的状态，没有副作用。
// 所有的远端错误都展示为同一句话，具体原因放在 Failed.Cause 里面。
func Project(snap query.Snapshot) domain.ViewState {
	if snap.Key == nil {
		return domain.Idle{}
	}
	id := *snap.Key
	switch {
	case snap.Status == query.StatusSuccess,
		// 后台刷新的时候继续展示旧的结果
		snap.Status == query.StatusPending && snap.HasData:
		return domain.Succeeded{JobID: id, Result: snap.Data}
	case snap.Status == query.StatusError:
		return domain.Failed{JobID: id, Message: MsgAnalysisFailed, Cause: snap.Err}
	default:
		// 有 key 但是还没有结果，都算加载中
		return domain.Loading{JobID: id}
	}
}
