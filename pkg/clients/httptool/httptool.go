package httptool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/priyankahotkar/DevCoach-AI/pkg/tools"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	ConnectionRefusedTag = "connection refused"

	HeaderContentType = "Content-Type"
	HeaderContentJSON = "application/json"
)

var replaceErrorMsg = map[string]string{
	ConnectionRefusedTag: "connection failed",
}

type ResponseMsg struct {
	Message string `json:"message"`
}

// StatusError 非 2xx 响应
// 调用方用 errors.As 区分状态类失败和网络类失败。
type StatusError struct {
	StatusCode int
	Method     string
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP request to %v %v failed with status code %d response:%v", e.Method, e.URL, e.StatusCode, e.Body)
}

type HTTPClient struct {
	sync.RWMutex
	hc                http.Client
	baseAddr          string
	defaultRespReader HTTPResponseReader
	header            http.Header
	clientName        string
	requestLog        bool
}

type HTTPResponseReader func(*http.Response, *http.Request, time.Time) ([]byte, error)

// NewHTTPClient 创建客户端
// baseAddr 不带协议时默认 https，requestLog 控制是否打印请求/响应日志。
func NewHTTPClient(baseAddr, clientName string, timeout time.Duration, transport *http.Transport, requestLog bool) *HTTPClient {
	if !strings.Contains(baseAddr, "://") {
		baseAddr = "https://" + baseAddr
	}
	ret := &HTTPClient{
		baseAddr: baseAddr,
		hc: http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		clientName: clientName,
		requestLog: requestLog,
	}
	ret.defaultRespReader = ret.readResponse
	return ret
}

func (hc *HTTPClient) SetHeader(key, value string) {
	hc.Lock()
	defer hc.Unlock()

	if hc.header == nil {
		hc.header = http.Header{}
	}

	hc.header.Set(key, value)
}

func (hc *HTTPClient) GetWithContext(ctx context.Context, url string) ([]byte, error) {
	return hc.fetchWithContext(ctx, http.MethodGet, url, nil, nil)
}

func (hc *HTTPClient) GetParamsWithContext(ctx context.Context, url string, params map[string][]string) ([]byte, error) {
	if len(params) == 0 {
		return hc.fetchWithContext(ctx, http.MethodGet, url, nil, nil)
	}
	var paramSlice []string
	for key, valSlice := range params {
		for _, val := range valSlice {
			paramSlice = append(paramSlice, key+"="+val)
		}
	}
	url = url + "?" + strings.Join(paramSlice, "&")
	return hc.fetchWithContext(ctx, http.MethodGet, url, nil, nil)
}

func (hc *HTTPClient) PostJSONWithContext(ctx context.Context, url string, obj interface{}) ([]byte, error) {
	body, err := json.Marshal(obj)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return hc.fetchWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body), nil)
}

func (hc *HTTPClient) fetchWithContext(ctx context.Context, method, url string, body io.Reader, respReader HTTPResponseReader) ([]byte, error) {
	targetURL := fmt.Sprintf("%v%v", hc.baseAddr, url)

	now := time.Now()

	if hc.requestLog && body != nil {
		b, _ := io.ReadAll(body)

		body = bytes.NewReader(b)
		log.Debugf("Sending %v request to %v", method, targetURL)
		log.Debugf("Body = %v", string(b))
	}

	req, err := http.NewRequestWithContext(ctx, method, targetURL, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	hc.RLock()
	if hc.header != nil {
		req.Header = hc.header.Clone()
	}
	hc.RUnlock()
	resp, err := hc.hc.Do(req)
	if err != nil {
		if strings.Contains(err.Error(), ConnectionRefusedTag) {
			return nil, fmt.Errorf("%s client: %s %s", hc.clientName, req.Host, replaceErrorMsg[ConnectionRefusedTag])
		}
		return nil, errors.WithStack(err)
	}

	r := hc.getRespReader(respReader)
	return r(resp, req, now)
}

func (hc *HTTPClient) getRespReader(respReader HTTPResponseReader) HTTPResponseReader {
	if respReader != nil {
		return respReader
	}
	return hc.defaultRespReader
}

func (hc *HTTPClient) readResponse(resp *http.Response, req *http.Request, startTime time.Time) ([]byte, error) {
	defer tools.ErrorWithPrintContext(resp.Body.Close, "close response body")
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var respStr string
	if len(bodyBytes) > 1024*100 {
		respStr = fmt.Sprintf("resp size: %v", len(bodyBytes))
	} else {
		respStr = string(bodyBytes)
	}

	if hc.requestLog {
		log.Debugf("Got response from %v %v, status code = %d, body = %v took = %v", req.Method, req.URL, resp.StatusCode, respStr, time.Since(startTime))
	}

	if time.Since(startTime) > 800*time.Millisecond {
		log.Infof("TimeConsuming: from %v %v, status code = %d, response body = %v took = %v\n", req.Method, req.URL, resp.StatusCode, respStr, time.Since(startTime))
	}

	if resp.StatusCode/100 != 2 {
		return bodyBytes, &StatusError{
			StatusCode: resp.StatusCode,
			Method:     req.Method,
			URL:        req.URL.String(),
			Body:       string(bodyBytes),
		}
	}
	return bodyBytes, nil
}
