package form

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

func TestParseEnvelope(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Result
	}{
		{
			name: "success with id",
			body: `{"success":true,"interviewId":"abc123"}`,
			want: Result{Success: true, InterviewID: "abc123"},
		},
		{
			name: "failure with message",
			body: `{"success":false,"message":"quota exceeded"}`,
			want: Result{Message: "quota exceeded"},
		},
		{
			name: "failure with error only",
			body: `{"success":false,"error":"model unavailable"}`,
			want: Result{Message: "model unavailable"},
		},
		{
			name: "message preferred over error",
			body: `{"success":false,"message":"human text","error":"stack trace"}`,
			want: Result{Message: "human text"},
		},
		{
			name: "success without id is a failure",
			body: `{"success":true}`,
			want: Result{Message: MsgGenericFailure},
		},
		{
			name: "failure without any text",
			body: `{"success":false}`,
			want: Result{Message: MsgGenericFailure},
		},
		{
			name: "garbage body",
			body: `<html>502 Bad Gateway</html>`,
			want: Result{Message: MsgGenericFailure},
		},
		{
			name: "empty body",
			body: ``,
			want: Result{Message: MsgGenericFailure},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseEnvelope([]byte(tc.body)))
		})
	}
}

func TestHTTPClientCreateInterview(t *testing.T) {
	var gotReq model.GenerateInterviewReq
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(model.GenerateInterviewRes{Success: true, InterviewID: "xyz789"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "tok-1")
	res, err := c.CreateInterview(context.Background(), model.GenerateInterviewReq{
		Role:      "Backend Developer",
		Level:     model.LevelSenior,
		Type:      model.TypeMixed,
		Techstack: "Go, PostgreSQL",
		Amount:    7,
		UserID:    "u-9",
	})
	require.NoError(t, err)
	assert.Equal(t, Result{Success: true, InterviewID: "xyz789"}, res)
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, "Go, PostgreSQL", gotReq.Techstack)
	assert.Equal(t, 7, gotReq.Amount)
}

func TestHTTPClientServerFailureEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.GenerateInterviewRes{Success: false, Message: "quota exceeded"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "")
	res, err := c.CreateInterview(context.Background(), model.GenerateInterviewReq{})
	require.NoError(t, err, "an answered request is not a transport error")
	assert.Equal(t, Result{Message: "quota exceeded"}, res)
}

func TestHTTPClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	c := NewHTTPClient(srv.URL, "")
	_, err := c.CreateInterview(context.Background(), model.GenerateInterviewReq{})
	assert.Error(t, err)
}
