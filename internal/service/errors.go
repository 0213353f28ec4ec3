package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid    = errors.New("参数错误")
	ErrDateInvalid     = errors.New("日期格式错误，应为 YYYY-MM-DD")
	ErrEntityNotFound  = errors.New("账号不存在")
	ErrURLNotFound     = errors.New("链接不存在")
	ErrURLTypeInvalid  = errors.New("不支持的链接类型")
	ErrPlatformInvalid = errors.New("平台取值非法")
	UnExpectedError    = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:    BadRequest,
	ErrDateInvalid:     BadRequest,
	ErrEntityNotFound:  NotFound,
	ErrURLNotFound:     NotFound,
	ErrURLTypeInvalid:  BadRequest,
	ErrPlatformInvalid: BadRequest,
	UnExpectedError:    InternalServerError,
}
