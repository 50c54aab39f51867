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

package trace

import (
	"context"

	"github.com/ecodeclub/jobsentry/internal/analysis/internal/client"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/jobsentry/internal/analysis/client"

type Client struct {
	client.Client
	tracer trace.Tracer
}

func NewClient(c client.Client, tp trace.TracerProvider) *Client {
	return &Client{
		Client: c,
		tracer: tp.Tracer(instrumentationName),
	}
}

func (c *Client) Submit(ctx context.Context, job domain.JobSubmission) (domain.JobID, error) {
	ctx, span := c.tracer.Start(ctx, "analysis.submit",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("company", job.CompanyName)))
	defer span.End()
	id, err := c.Client.Submit(ctx, job)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return id, err
	}
	span.SetAttributes(attribute.String("job.id", id.String()))
	return id, nil
}

func (c *Client) Analyze(ctx context.Context, id domain.JobID) (domain.AnalysisResult, error) {
	ctx, span := c.tracer.Start(ctx, "analysis.analyze",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("job.id", id.String())))
	defer span.End()
	res, err := c.Client.Analyze(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}
	span.SetAttributes(
		attribute.Bool("fraudulent", res.IsPotentiallyFraudulent),
		attribute.Int64("confidence", res.ConfidenceScore))
	return res, nil
}
