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

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/jobsentry/internal/analysis/internal/client"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	analysismocks "github.com/ecodeclub/jobsentry/internal/analysis/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClient_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockClient := analysismocks.NewMockClient(ctrl)
	// 只有第一次请求能拿到令牌
	mockClient.EXPECT().Analyze(gomock.Any(), domain.JobID(1)).
		Return(domain.AnalysisResult{ConfidenceScore: 50}, nil).Times(1)

	c := NewClient(mockClient, 0.001, 1)
	res, err := c.Analyze(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(50), res.ConfidenceScore)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.Analyze(ctx, 1)
	assert.ErrorIs(t, err, client.ErrRemoteUnavailable)
}

func TestClient_Unlimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockClient := analysismocks.NewMockClient(ctrl)
	mockClient.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(domain.JobID(3), nil).Times(5)

	c := NewClient(mockClient, 0, 0)
	for i := 0; i < 5; i++ {
		id, err := c.Submit(context.Background(), domain.JobSubmission{})
		require.NoError(t, err)
		assert.Equal(t, domain.JobID(3), id)
	}
}
