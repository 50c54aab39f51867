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

type ViewKind string

const (
	ViewIdle      ViewKind = "idle"
	ViewLoading   ViewKind = "loading"
	ViewFailed    ViewKind = "error"
	ViewSucceeded ViewKind = "success"
)

// ViewState 展示层唯一需要关心的状态，只有下面四种实现
type ViewState interface {
	Kind() ViewKind
	viewState()
}

type Idle struct{}

func (Idle) Kind() ViewKind { return ViewIdle }
func (Idle) viewState()     {}

type Loading struct {
	JobID JobID
}

func (Loading) Kind() ViewKind { return ViewLoading }
func (Loading) viewState()     {}

type Failed struct {
	JobID   JobID
	Message string
	// Cause 只用于打日志，不要展示给用户
	Cause error
}

func (Failed) Kind() ViewKind { return ViewFailed }
func (Failed) viewState()     {}

type Succeeded struct {
	JobID  JobID
	Result AnalysisResult
}

func (Succeeded) Kind() ViewKind { return ViewSucceeded }
func (Succeeded) viewState()     {}
