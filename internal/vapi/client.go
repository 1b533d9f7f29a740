// Package vapi holds the voice-interview integration. The integration is a
// stub: the client carries configuration and builds the assistant payload the
// web client needs, but the service itself never places calls.
package vapi

type Client struct {
	webToken   string
	workflowID string
}

func NewClient(webToken, workflowID string) *Client {
	return &Client{webToken: webToken, workflowID: workflowID}
}

// ConfigStatus reports which credentials are present, without revealing more
// than a short prefix. Serves the voice smoke-test endpoint.
type ConfigStatus struct {
	HasWebToken    bool   `json:"has_web_token"`
	HasWorkflowID  bool   `json:"has_workflow_id"`
	TokenPrefix    string `json:"token_prefix"`
	WorkflowPrefix string `json:"workflow_prefix"`
}

func (c *Client) Status() ConfigStatus {
	return ConfigStatus{
		HasWebToken:    c.webToken != "",
		HasWorkflowID:  c.workflowID != "",
		TokenPrefix:    prefix(c.webToken),
		WorkflowPrefix: prefix(c.workflowID),
	}
}

// Configured reports whether the stub has everything a voice session needs.
func (c *Client) Configured() bool {
	return c.webToken != "" && c.workflowID != ""
}

// SessionConfig is what the web client needs to start a voice interview
// against the workflow. Questions come from the stored interview document.
type SessionConfig struct {
	WorkflowID string   `json:"workflow_id"`
	UserName   string   `json:"user_name"`
	Questions  []string `json:"questions"`
}

func (c *Client) Session(userName string, questions []string) SessionConfig {
	return SessionConfig{
		WorkflowID: c.workflowID,
		UserName:   userName,
		Questions:  questions,
	}
}

func prefix(s string) string {
	if s == "" {
		return "not set"
	}
	if len(s) <= 10 {
		return s
	}
	return s[:10]
}
