package form

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/Harsh-986/PrepWise/pkg/model"
)

// Result is the interpreted outcome of the generation call: either a created
// interview id, or a failure message to surface. It replaces the service's
// loosely-typed envelope with an explicit either-or.
type Result struct {
	Success     bool
	InterviewID string
	Message     string
}

// Client is the narrow interface the form needs from the generation service.
// An error return means the call itself never completed (transport failure);
// application-level failures come back inside the Result.
type Client interface {
	CreateInterview(ctx context.Context, req model.GenerateInterviewReq) (Result, error)
}

// HTTPClient posts interview requests to the generation endpoint.
type HTTPClient struct {
	endpoint string
	token    string
	http     *http.Client
}

func NewHTTPClient(endpoint, token string) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{},
	}
}

func (c *HTTPClient) CreateInterview(ctx context.Context, req model.GenerateInterviewReq) (Result, error) {
	b, _ := json.Marshal(req)
	r, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(b))
	if err != nil {
		return Result{}, err
	}
	r.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		r.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(r)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}
	// Non-2xx still carries the envelope; parseEnvelope turns anything
	// ambiguous into a Failure, so the status code is not consulted.
	return parseEnvelope(body), nil
}

// parseEnvelope maps the service's `{success, interviewId?, message?, error?}`
// body into a Result. Success requires both success:true and a non-empty
// interviewId; everything else is a failure carrying the best available
// message (message, then error, then the generic fallback). Unparseable
// bodies fall back the same way.
func parseEnvelope(body []byte) Result {
	var env model.GenerateInterviewRes
	if err := json.Unmarshal(body, &env); err != nil {
		return Result{Message: MsgGenericFailure}
	}
	if env.Success && env.InterviewID != "" {
		return Result{Success: true, InterviewID: env.InterviewID}
	}
	msg := env.Message
	if msg == "" {
		msg = env.Error
	}
	if msg == "" {
		msg = MsgGenericFailure
	}
	return Result{Message: msg}
}
