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

package testioc

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
)

// 和 config.yaml 里面 kafka.topics 保持一致
var topics = map[string]int{
	"job_analysis_events": 1,
}

// InitMQ 每次都返回一个新的内存实现，测试之间不会互相看到消息
func InitMQ() mq.MQ {
	q := memory.NewMQ()
	for name, partitions := range topics {
		err := q.CreateTopic(context.Background(), name, partitions)
		if err != nil {
			panic(err)
		}
	}
	return q
}
