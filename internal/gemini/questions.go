package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Harsh-986/PrepWise/pkg/model"
)

// InterviewQuestions asks the model for the requested number of questions and
// returns them as plain strings, ready to be read aloud by a voice assistant.
func (c *Client) InterviewQuestions(ctx context.Context, req model.GenerateInterviewReq) ([]string, error) {
	prompt := fmt.Sprintf(`Prepare questions for a job interview.
The job role is %s.
The job experience level is %s.
The tech stack used in the job is: %s.
The focus between behavioural and technical questions should lean towards: %s.
The amount of questions required is: %d.
Please return only the questions, without any additional text.
The questions are going to be read by a voice assistant so do not use "/" or "*" or any other special characters which might break the voice assistant.
Return the questions formatted like this:
["Question 1", "Question 2", "Question 3"]
`, req.Role, req.Level, req.Techstack, req.Type, req.Amount)

	raw, err := c.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions, err := parseQuestions(raw)
	if err != nil {
		return nil, fmt.Errorf("parse model output: %w; raw response: %q", err, raw)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("model returned no questions")
	}
	return questions, nil
}

// parseQuestions extracts the JSON string array from the model output. Models
// routinely wrap the array in markdown fences or prose, so the parse works on
// the outermost [...] slice of the text.
func parseQuestions(raw string) ([]string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array found")
	}

	var questions []string
	if err := json.Unmarshal([]byte(s[start:end+1]), &questions); err != nil {
		return nil, err
	}

	out := questions[:0]
	for _, q := range questions {
		if q = strings.TrimSpace(q); q != "" {
			out = append(out, q)
		}
	}
	return out, nil
}
