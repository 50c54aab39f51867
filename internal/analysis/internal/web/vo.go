package web

import (
	"fmt"

	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
)

const (
	verdictFake    = "Potentially Fake"
	verdictGenuine = "Appears Genuine"

	adviceFake = "This job posting shows signs of potential fraud. Please exercise caution and verify " +
		"the company independently before sharing personal information or proceeding with the application."
	adviceGenuine = "This job posting appears legitimate based on our analysis. However, always verify " +
		"company details independently and be cautious with personal information."

	companyVerifiedNote   = "This company is verified in our database and appears to be a legitimate organization."
	companyUnverifiedNote = "Company information found but not yet verified. Please conduct additional research."

	msgSubmitFailed = "Failed to submit job posting"
)

type SessionReq struct {
	SID string `json:"sid"`
}

type SubmitReq struct {
	SID          string `json:"sid"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CompanyName  string `json:"companyName"`
	ContactEmail string `json:"contactEmail"`
	// Salary 保持表单里面的原样，空字符串表示没有填写
	Salary string `json:"salary"`
}

func (req SubmitReq) toDomain() domain.RawFormInput {
	return domain.RawFormInput{
		Title:        req.Title,
		Description:  req.Description,
		CompanyName:  req.CompanyName,
		ContactEmail: req.ContactEmail,
		Salary:       req.Salary,
	}
}

type ViewReq struct {
	SID string `json:"sid"`
	// Wait 为 true 的时候，等到分析结束再返回
	Wait bool `json:"wait"`
}

type SessionVO struct {
	SID string `json:"sid"`
}

type SubmitVO struct {
	// JobID 用字符串，避免前端丢失精度
	JobID string `json:"jobId"`
}

// FieldErrorVO 校验失败时告诉前端是哪个字段
type FieldErrorVO struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type ViewVO struct {
	Status string            `json:"status"`
	JobID  string            `json:"jobId,omitempty"`
	Error  string            `json:"error,omitempty"`
	Result *AnalysisResultVO `json:"result,omitempty"`
}

type AnalysisResultVO struct {
	IsPotentiallyFraudulent bool           `json:"isPotentiallyFraudulent"`
	Verdict                 string         `json:"verdict"`
	Advice                  string         `json:"advice"`
	ConfidenceScore         int64          `json:"confidenceScore"`
	ConfidenceLabel         string         `json:"confidenceLabel"`
	Reasons                 []string       `json:"reasons"`
	CompanyInfo             *CompanyInfoVO `json:"companyInfo,omitempty"`
	VerifiedEmailDomain     *string        `json:"verifiedEmailDomain,omitempty"`
}

type CompanyInfoVO struct {
	Name       string `json:"name"`
	IsVerified bool   `json:"isVerified"`
	Industry   string `json:"industry"`
	Note       string `json:"note"`
}

func newViewVO(state domain.ViewState) ViewVO {
	vo := ViewVO{Status: string(state.Kind())}
	switch s := state.(type) {
	case domain.Idle:
	case domain.Loading:
		vo.JobID = s.JobID.String()
	case domain.Failed:
		vo.JobID = s.JobID.String()
		vo.Error = s.Message
	case domain.Succeeded:
		vo.JobID = s.JobID.String()
		vo.Result = newAnalysisResultVO(s.Result)
	}
	return vo
}

func newAnalysisResultVO(res domain.AnalysisResult) *AnalysisResultVO {
	vo := &AnalysisResultVO{
		IsPotentiallyFraudulent: res.IsPotentiallyFraudulent,
		Verdict:                 verdictGenuine,
		Advice:                  adviceGenuine,
		ConfidenceScore:         res.ConfidenceScore,
		ConfidenceLabel:         fmt.Sprintf("Confidence Score: %d%%", res.ConfidenceScore),
		Reasons:                 res.Reasons,
		VerifiedEmailDomain:     res.VerifiedEmailDomain,
	}
	if res.IsPotentiallyFraudulent {
		vo.Verdict = verdictFake
		vo.Advice = adviceFake
	}
	if vo.Reasons == nil {
		vo.Reasons = []string{}
	}
	if res.CompanyInfo != nil {
		note := companyUnverifiedNote
		if res.CompanyInfo.IsVerified {
			note = companyVerifiedNote
		}
		vo.CompanyInfo = &CompanyInfoVO{
			Name:       res.CompanyInfo.Name,
			IsVerified: res.CompanyInfo.IsVerified,
			Industry:   res.CompanyInfo.Industry,
			Note:       note,
		}
	}
	return vo
}
