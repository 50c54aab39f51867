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

package config

// RedisConfig 对应配置里面的 redis
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// KafkaConfig 对应配置里面的 kafka，启动的时候会把 Topics 都创建出来
type KafkaConfig struct {
	Network   string        `yaml:"network"`
	Addresses []string      `yaml:"addresses"`
	Topics    []TopicConfig `yaml:"topics"`
}

type TopicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

type ZipkinConfig struct {
	Endpoint       string `yaml:"endpoint"`
	ServiceName    string `yaml:"serviceName"`
	ServiceVersion string `yaml:"serviceVersion"`
	// SampleRatio 取值 [0, 1]
	SampleRatio float64 `yaml:"sampleRatio"`
}
