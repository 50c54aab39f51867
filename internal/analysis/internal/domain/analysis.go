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

package domain

const (
	MinConfidence = 0
	MaxConfidence = 100
)

type AnalysisResult struct {
	IsPotentiallyFraudulent bool
	// 保持远端给出的顺序
	Reasons         []string
	ConfidenceScore int64
	// 下面两个字段远端可能不返回，nil 就是没有
	CompanyInfo         *CompanyInfo
	VerifiedEmailDomain *string
}

func (r AnalysisResult) ConfidenceValid() bool {
	return r.ConfidenceScore >= MinConfidence && r.ConfidenceScore <= MaxConfidence
}

type CompanyInfo struct {
	Name       string
	IsVerified bool
	Industry   string
}
