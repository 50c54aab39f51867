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

package web

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/client"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/domain"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/errs"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const defaultWaitTimeout = 30 * time.Second

type Handler struct {
	svc         service.SessionService
	waitTimeout time.Duration
	logger      *elog.Component
}

func NewHandler(svc service.SessionService) *Handler {
	return &Handler{
		svc:         svc,
		waitTimeout: defaultWaitTimeout,
		logger:      elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/analysis")
	g.POST("/session", ginx.W(h.Open))
	g.POST("/submit", ginx.B[SubmitReq](h.Submit))
	g.POST("/view", ginx.B[ViewReq](h.View))
	g.POST("/reset", ginx.B[SessionReq](h.Reset))
}

func (h *Handler) Open(ctx *ginx.Context) (ginx.Result, error) {
	sid := h.svc.Open(ctx)
	return ginx.Result{
		Data: SessionVO{SID: sid},
	}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq) (ginx.Result, error) {
	id, err := h.svc.Submit(ctx, req.SID, req.toDomain())
	var ve *domain.ValidationError
	switch {
	case err == nil:
		return ginx.Result{
			Data: SubmitVO{JobID: id.String()},
		}, nil
	case errors.As(err, &ve):
		return ginx.Result{
			Code: errs.InvalidInput.Code,
			Msg:  ve.Msg,
			Data: FieldErrorVO{Field: ve.Field, Rule: ve.Rule},
		}, nil
	case errors.Is(err, service.ErrAlreadySubmitting):
		return alreadySubmittingResult, nil
	case errors.Is(err, service.ErrSessionNotFound):
		return sessionNotFoundResult, nil
	case errors.Is(err, service.ErrSessionReset):
		// 用户已经放弃了这次提交
		return ginx.Result{
			Data: SubmitVO{JobID: id.String()},
		}, nil
	case errors.Is(err, client.ErrRemoteRejected),
		errors.Is(err, client.ErrRemoteUnavailable),
		errors.Is(err, client.ErrRemoteError),
		errors.Is(err, client.ErrNotFound):
		h.logger.Error("提交招聘信息失败", elog.FieldErr(err), elog.String("sid", req.SID))
		return ginx.Result{
			Code: errs.RemoteFailure.Code,
			Msg:  msgSubmitFailed,
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) View(ctx *ginx.Context, req ViewReq) (ginx.Result, error) {
	var (
		c      context.Context = ctx.Request.Context()
		cancel context.CancelFunc
	)
	if req.Wait {
		c, cancel = context.WithTimeout(c, h.waitTimeout)
		defer cancel()
	}
	state, err := h.svc.View(c, req.SID, req.Wait)
	switch {
	case err == nil:
		return ginx.Result{
			Data: newViewVO(state),
		}, nil
	case errors.Is(err, service.ErrSessionNotFound):
		return sessionNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Reset(ctx *ginx.Context, req SessionReq) (ginx.Result, error) {
	err := h.svc.Reset(ctx, req.SID)
	switch {
	case err == nil:
		return ginx.Result{}, nil
	case errors.Is(err, service.ErrSessionNotFound):
		return sessionNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}
