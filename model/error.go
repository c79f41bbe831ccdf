package model

import (
	"fmt"
	"regexp"

	log "github.com/sirupsen/logrus"
)

const (
	ErrorParams              = 100001
	ErrorDB                  = 100002
	ErrorUserNotFound        = 100003
	ErrorPlatformNotFound    = 100004
	ErrorPlatformUnavailable = 100005
	ErrorModelInvocation     = 100006
	ErrorResponseParse       = 100007
	ErrorNewRepo             = 100008
)

var ErrorMessages = map[int]string{
	ErrorParams:              "参数错误",
	ErrorDB:                  "db error",
	ErrorUserNotFound:        "user not found",
	ErrorPlatformNotFound:    "platform user not found",
	ErrorPlatformUnavailable: "platform unavailable",
	ErrorModelInvocation:     "model invocation failed",
	ErrorResponseParse:       "model response parse failed",
	ErrorNewRepo:             "新建 repo 失败",
}

type Error struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	InnerError error  `json:"inner_error"`
}

func (err Error) Error() string {
	return err.Message
}

func (err Error) String() string {
	return err.InnerError.Error()
}

func NewError(code int, innerError error) *Error {
	if innerError != nil {
		var re = regexp.MustCompile(`[\n\t]+`)
		innerErrorString := re.ReplaceAllString(fmt.Sprintf("%+v", innerError), " ")
		log.Errorf("NewError code:%d, message:%s, innerError:%+v\n", code, ErrorMessages[code], innerErrorString)
	}
	return &Error{
		Code:       code,
		Message:    ErrorMessages[code],
		InnerError: nil,
	}
}

func NewErrorWithMessage(code int, message string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		InnerError: nil,
	}
}
