package ioc

import (
	"time"

	"github.com/ecodeclub/jobsentry/config"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

// InitZipkinTracer 初始化 zipkin tracer，远端分析客户端的 span 都从全局 provider 创建
func InitZipkinTracer() *trace.TracerProvider {
	cfg := config.ZipkinConfig{
		ServiceName:    "jobsentry",
		ServiceVersion: "v0.0.1",
		SampleRatio:    1,
	}
	err := econf.UnmarshalKey("trace.zipkin", &cfg)
	if err != nil {
		elog.Panic("read zipkin config failed", elog.FieldErr(err))
	}
	res, err := newResource(cfg)
	if err != nil {
		elog.Panic("init resource failed", elog.FieldErr(err))
	}

	otel.SetTextMapPropagator(newPropagator())

	tp, err := newTracerProvider(cfg, res)
	if err != nil {
		elog.Panic("init tracer provider failed", elog.FieldErr(err))
	}
	otel.SetTracerProvider(tp)
	return tp
}

func newResource(cfg config.ZipkinConfig) (*resource.Resource, error) {
	// 不带 schema，避免和 resource.Default() 的 schema 冲突
	return resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			attribute.String("service.name", cfg.ServiceName),
			attribute.String("service.version", cfg.ServiceVersion),
		),
	)
}

func newTracerProvider(cfg config.ZipkinConfig, res *resource.Resource) (*trace.TracerProvider, error) {
	exporter, err := zipkin.New(cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	// 远端分析请求的 span 跟着入口请求一起采样
	sampler := trace.ParentBased(trace.TraceIDRatioBased(cfg.SampleRatio))
	return trace.NewTracerProvider(
		trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)),
		trace.WithResource(res),
		trace.WithSampler(sampler),
	), nil
}

// newPropagator 创建上下文传播器
func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}
