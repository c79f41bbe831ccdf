package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/priyankahotkar/DevCoach-AI/config"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader    = "X-Request-ID"
	RequestIDInLogName = "request_id"
)

func Logger(ctx *gin.Context) {
	start := time.Now().UTC()
	path := ctx.Request.URL.Path
	var bodyBytes []byte
	if ctx.Request.Body != nil {
		bodyBytes, _ = io.ReadAll(ctx.Request.Body)
	}

	request := ""
	if config.GetInstance().GetBool(config.ApplicationLogRequest) {
		idr := io.NopCloser(bytes.NewBuffer(bodyBytes))
		body, err := readBody(idr)
		if err != nil {
			logrus.Errorf("read body bytes err:%v", err)
			return
		}
		request = body
	}
	ctx.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	ip := ctx.ClientIP()

	ctx.Next()

	end := time.Now().UTC()
	latency := end.Sub(start)
	requestID, ok := ctx.Get(RequestIDHeader)
	if !ok {
		logrus.Infof("%s| %s| %s| %s |request: %s", ctx.Request.Method, latency, ip, path, request)
	} else {
		logrus.WithField(RequestIDInLogName, requestID).Infof("%s| %s| %s| %s |request: %s", ctx.Request.Method, latency, ip, path, request)
	}
}

func readBody(reader io.Reader) (string, error) {
	buf := new(bytes.Buffer)
	_, err := buf.ReadFrom(reader)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return buf.String(), nil
}
