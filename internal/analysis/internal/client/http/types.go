package http

import (
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
)

type submitReq struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	CompanyName  string `json:"companyName"`
	ContactEmail string `json:"contactEmail"`
	Salary       *int64 `json:"salary,omitempty"`
}

func newSubmitReq(job domain.JobSubmission) submitReq {
	return submitReq{
		Title:        job.Title,
		Description:  job.Description,
		CompanyName:  job.CompanyName,
		ContactEmail: job.ContactEmail,
		Salary:       job.Salary,
	}
}

type submitResp struct {
	JobID uint64 `json:"jobId"`
}

type analysisResult struct {
	IsPotentiallyFraudulent bool         `json:"isPotentiallyFraudulent"`
	Reasons                 []string     `json:"reasons"`
	ConfidenceScore         int64        `json:"confidenceScore"`
	CompanyInfo             *companyInfo `json:"companyInfo,omitempty"`
	VerifiedEmailDomain     *string      `json:"verifiedEmailDomain,omitempty"`
}

type companyInfo struct {
	Name       string `json:"name"`
	IsVerified bool   `json:"isVerified"`
	Industry   string `json:"industry"`
}

func (r analysisResult) toDomain() domain.AnalysisResult {
	res := domain.AnalysisResult{
		IsPotentiallyFraudulent: r.IsPotentiallyFraudulent,
		Reasons:                 r.Reasons,
		ConfidenceScore:         r.ConfidenceScore,
		VerifiedEmailDomain:     r.VerifiedEmailDomain,
	}
	if res.Reasons == nil {
		res.Reasons = []string{}
	}
	if r.CompanyInfo != nil {
		res.CompanyInfo = &domain.CompanyInfo{
			Name:       r.CompanyInfo.Name,
			IsVerified: r.CompanyInfo.IsVerified,
			Industry:   r.CompanyInfo.Industry,
		}
	}
	return res
}
