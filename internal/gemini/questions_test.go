package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harsh-986/PrepWise/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionsPlainArray(t *testing.T) {
	got, err := parseQuestions(`["What is a goroutine?", "Explain channels."]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"What is a goroutine?", "Explain channels."}, got)
}

func TestParseQuestionsMarkdownFenced(t *testing.T) {
	raw := "```json\n[\"Q1\", \"Q2\"]\n```"
	got, err := parseQuestions(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2"}, got)
}

func TestParseQuestionsSurroundingProse(t *testing.T) {
	raw := "Here are your questions:\n[\"Q1\", \"Q2\"]\nGood luck!"
	got, err := parseQuestions(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2"}, got)
}

func TestParseQuestionsDropsBlankEntries(t *testing.T) {
	got, err := parseQuestions(`["Q1", "  ", "Q2", ""]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2"}, got)
}

func TestParseQuestionsNoArray(t *testing.T) {
	_, err := parseQuestions("I could not generate questions.")
	assert.Error(t, err)
}

func TestInterviewQuestionsEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "Frontend Developer")
		assert.Contains(t, req.Contents[0].Parts[0].Text, "React, TypeScript")

		resp := GenerateResponse{}
		resp.Candidates = []struct {
			Content Content `json:"content"`
		}{{Content: Content{Parts: []Part{{Text: `["Q1", "Q2", "Q3"]`}}}}}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient("test-key", "gemini-2.0-flash")
	c.SetBaseURL(srv.URL)

	got, err := c.InterviewQuestions(context.Background(), model.GenerateInterviewReq{
		Role:      "Frontend Developer",
		Level:     model.LevelJunior,
		Type:      model.TypeTechnical,
		Techstack: "React, TypeScript",
		Amount:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, got)
}

func TestInterviewQuestionsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "gemini-2.0-flash")
	c.SetBaseURL(srv.URL)

	_, err := c.InterviewQuestions(context.Background(), model.GenerateInterviewReq{Amount: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
