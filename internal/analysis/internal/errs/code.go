package errs

var (
	SystemError       = ErrorCode{Code: 521001, Msg: "系统错误"}
	InvalidInput      = ErrorCode{Code: 421001, Msg: "输入错误"}
	AlreadySubmitting = ErrorCode{Code: 421002, Msg: "正在提交中"}
	SessionNotFound   = ErrorCode{Code: 421003, Msg: "会话不存在"}
	RemoteFailure     = ErrorCode{Code: 521002, Msg: "分析服务异常"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
