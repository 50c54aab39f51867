package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobsentry/internal/analysis/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	alreadySubmittingResult = ginx.Result{
		Code: errs.AlreadySubmitting.Code,
		Msg:  errs.AlreadySubmitting.Msg,
	}
	sessionNotFoundResult = ginx.Result{
		Code: errs.SessionNotFound.Code,
		Msg:  errs.SessionNotFound.Msg,
	}
)
