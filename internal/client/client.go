// Package client downloads Flex query reports through the Flex Web Service
// without logging into the Account Management web page.
//
// https://www.interactivebrokers.com/en/software/am/am/reports/flex_web_service_version_3.htm
package client

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fjacquet/flex-csv/internal/logging"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

const (
	flexURL    = "https://gdcdyn.interactivebrokers.com/Universal/servlet/"
	RequestURL = flexURL + "FlexStatementService.SendRequest"
	StmtURL    = flexURL + "FlexStatementService.GetStatement"
)

// errorMessages maps the Flex Web Service error codes to their documented
// meanings.
var errorMessages = map[string]string{
	"1003": "Statement is not available.",
	"1004": "Statement is incomplete at this time. Please try again shortly.",
	"1005": "Settlement data is not ready at this time. Please try again shortly.",
	"1006": "FIFO P/L data is not ready at this time. Please try again shortly.",
	"1007": "MTM P/L data is not ready at this time. Please try again shortly.",
	"1008": "MTM and FIFO P/L data is not ready at this time. Please try again shortly.",
	"1009": "The server is under heavy load. Statement could not be generated at this time. Please try again shortly.",
	"1010": "Legacy Flex Queries are no longer supported. Please convert over to Activity Flex.",
	"1011": "Service account is inactive.",
	"1012": "Token has expired.",
	"1013": "IP restriction.",
	"1014": "Query is invalid.",
	"1015": "Token is invalid.",
	"1016": "Account in invalid.",
	"1017": "Reference code is invalid.",
	"1018": "Too many requests have been made from this token. Please try again shortly.",
	"1019": "Statement generation in progress. Please try again shortly.",
	"1020": "Invalid request or unable to validate request.",
	"1021": "Statement could not be retrieved at this time. Please try again shortly.",
}

// serverBusy are the codes meaning the statement is still being generated.
var serverBusy = map[string]time.Duration{
	"1009": 5 * time.Second,
	"1019": 5 * time.Second,
	"1018": 10 * time.Second,
}

// ResponseCodeError is returned when the Flex server answers with a
// documented error code.
type ResponseCodeError struct {
	Code    string
	Message string
}

func (e *ResponseCodeError) Error() string {
	return fmt.Sprintf("Code=%s: %s", e.Code, e.Message)
}

// BadResponseError is returned for a response that is neither a statement
// nor a well-formed status element.
type BadResponseError struct {
	Body []byte
}

func (e *BadResponseError) Error() string {
	body := string(e.Body)
	if len(body) > 512 {
		body = body[:512] + "..."
	}
	return fmt.Sprintf("malformed Flex response: %s", body)
}

// ErrGenerationTimeout is returned when the server keeps reporting that the
// statement is being generated past the retry budget.
var ErrGenerationTimeout = errors.New("exceeded max number of tries while attempting download")

// statementResponse is the first-step acknowledgement. On success it
// carries the reference code and the statement URL; on failure the error
// code and message.
type statementResponse struct {
	XMLName       xml.Name `xml:"FlexStatementResponse"`
	Timestamp     string   `xml:"timestamp,attr"`
	Status        string   `xml:"Status"`
	ReferenceCode string   `xml:"ReferenceCode"`
	URL           string   `xml:"Url"`
	ErrorCode     string   `xml:"ErrorCode"`
	ErrorMessage  string   `xml:"ErrorMessage"`
}

// Client talks to the Flex Web Service. The zero Options give production
// behavior; tests point BaseRequestURL/BaseStmtURL at a local server.
type Client struct {
	httpClient  *http.Client
	requestURL  string
	stmtURL     string
	maxTries    int
	timeoutStep time.Duration
}

// Options configures a Client.
type Options struct {
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
	// BaseRequestURL overrides the SendRequest endpoint.
	BaseRequestURL string
	// BaseStmtURL overrides the GetStatement endpoint.
	BaseStmtURL string
	// MaxTries bounds the generation-poll loop. Default 5.
	MaxTries int
}

// New builds a Flex Web Service client.
func New(opts Options) *Client {
	c := &Client{
		httpClient:  opts.HTTPClient,
		requestURL:  opts.BaseRequestURL,
		stmtURL:     opts.BaseStmtURL,
		maxTries:    opts.MaxTries,
		timeoutStep: 5 * time.Second,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.requestURL == "" {
		c.requestURL = RequestURL
	}
	if c.stmtURL == "" {
		c.stmtURL = StmtURL
	}
	if c.maxTries == 0 {
		c.maxTries = 5
	}
	return c
}

// Download runs the 2-step report download: request statement generation,
// then poll for the generated document, backing off while the server
// reports it busy.
//
// token is the access token from Reports > Settings > Flex Web Service;
// queryID identifies the configured Flex query.
func (c *Client) Download(ctx context.Context, token, queryID string) ([]byte, error) {
	log.WithField(logging.FieldQuery, queryID).Info("Requesting Flex statement generation")
	access, err := c.RequestStatement(ctx, token, queryID)
	if err != nil {
		return nil, err
	}

	stmtURL := access.URL
	if stmtURL == "" {
		stmtURL = c.stmtURL
	}

	var delay time.Duration
	for try := 1; try <= c.maxTries; try++ {
		if err := sleepCtx(ctx, delay); err != nil {
			return nil, err
		}
		body, err := c.submit(ctx, stmtURL, token, access.ReferenceCode)
		if err != nil {
			return nil, err
		}
		done, retryAfter, err := checkStatementBody(body)
		if err != nil {
			return nil, err
		}
		if done {
			log.WithField(logging.FieldBytes, len(body)).Info("Flex statement downloaded")
			return body, nil
		}
		log.WithField("delay", retryAfter).Debug("Statement not ready, backing off")
		delay = retryAfter
	}
	return nil, ErrGenerationTimeout
}

// StatementAccess is the successful first-step acknowledgement.
type StatementAccess struct {
	ReferenceCode string
	URL           string
}

// RequestStatement performs the first download step and returns the
// reference code used to fetch the generated statement.
func (c *Client) RequestStatement(ctx context.Context, token, queryID string) (StatementAccess, error) {
	body, err := c.submit(ctx, c.requestURL, token, queryID)
	if err != nil {
		return StatementAccess{}, err
	}
	resp, err := parseStatementResponse(body)
	if err != nil {
		return StatementAccess{}, err
	}
	if resp.Status != "Success" {
		return StatementAccess{}, &ResponseCodeError{Code: resp.ErrorCode, Message: describe(resp)}
	}
	return StatementAccess{ReferenceCode: resp.ReferenceCode, URL: resp.URL}, nil
}

// submit posts one query to an API access point, retrying timeouts with a
// progressively wider timeout window.
func (c *Client) submit(ctx context.Context, endpoint, token, query string) ([]byte, error) {
	const maxRequests = 3

	var lastErr error
	for attempt := 1; attempt <= maxRequests; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, time.Duration(attempt)*c.timeoutStep)
		body, err := c.get(attemptCtx, endpoint, token, query)
		cancel()
		if err == nil {
			return body, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.WithError(err).Warn("Request timeout, re-sending")
	}
	return nil, lastErr
}

func (c *Client) get(ctx context.Context, endpoint, token, query string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("v", "3")
	params.Set("t", token)
	params.Set("q", query)
	req.URL.RawQuery = params.Encode()
	// The service rejects unknown user agents.
	req.Header.Set("user-agent", "Java")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithError(err).Warn("Failed to close response body")
		}
	}()
	return io.ReadAll(resp.Body)
}

func parseStatementResponse(body []byte) (*statementResponse, error) {
	var resp statementResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, &BadResponseError{Body: body}
	}
	switch resp.Status {
	case "Success", "Fail", "Warn":
		return &resp, nil
	}
	return nil, &BadResponseError{Body: body}
}

// checkStatementBody classifies the second-step response: the statement
// itself, a retry-shortly status, or a hard error. Statements can be
// massive, so the happy path is a substring probe rather than a parse.
func checkStatementBody(body []byte) (done bool, retryAfter time.Duration, err error) {
	s := string(body)
	if strings.Contains(s, "FlexQueryResponse") {
		return true, 0, nil
	}
	if !strings.Contains(s, "FlexStatementResponse") {
		return false, 0, &BadResponseError{Body: body}
	}
	resp, err := parseStatementResponse(body)
	if err != nil {
		return false, 0, err
	}
	if resp.Status == "Success" {
		return false, 0, &BadResponseError{Body: body}
	}
	if delay, ok := serverBusy[resp.ErrorCode]; ok {
		return false, delay, nil
	}
	return false, 0, &ResponseCodeError{Code: resp.ErrorCode, Message: describe(resp)}
}

func describe(resp *statementResponse) string {
	if resp.ErrorMessage != "" {
		return resp.ErrorMessage
	}
	if msg, ok := errorMessages[resp.ErrorCode]; ok {
		return msg
	}
	return "unknown error"
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
