package event

import (
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
)

const JobSubmittedTopic = "job_analysis_events"

type JobSubmittedEvent struct {
	JobID       uint64 `json:"jobId"`
	CompanyName string `json:"companyName"`
	HasSalary   bool   `json:"hasSalary"`
	// Ctime 毫秒
	Ctime int64 `json:"ctime"`
}

func (JobSubmittedEvent) Topic() string {
	return JobSubmittedTopic
}

func NewJobSubmittedEvent(id domain.JobID, job domain.JobSubmission, ctime int64) JobSubmittedEvent {
	return JobSubmittedEvent{
		JobID:       uint64(id),
		CompanyName: job.CompanyName,
		HasSalary:   job.Salary != nil,
		Ctime:       ctime,
	}
}
