package form

import (
	"context"
	"errors"
	"testing"

	"github.com/Harsh-986/PrepWise/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	calls   int
	lastReq model.GenerateInterviewReq
	result  Result
	err     error
	reenter func() // invoked mid-call to simulate a rapid second submit
}

func (c *fakeClient) CreateInterview(_ context.Context, req model.GenerateInterviewReq) (Result, error) {
	c.calls++
	c.lastReq = req
	if c.reenter != nil {
		c.reenter()
	}
	return c.result, c.err
}

func filledForm(t *testing.T) Form {
	t.Helper()
	f := New("user-1", "Harsh")
	f, _ = Apply(f, RoleChanged{Text: "Frontend Developer"})
	f, _ = Apply(f, LevelSet{Value: model.LevelJunior})
	f, _ = Apply(f, TypeSet{Value: model.TypeTechnical})
	f, _ = Apply(f, TechPicked{Value: "React"})
	f, _ = Apply(f, TechPicked{Value: "TypeScript"})
	return f
}

func TestDefaults(t *testing.T) {
	f := New("u", "n")
	assert.Equal(t, model.LevelMid, f.Level)
	assert.Equal(t, model.TypeMixed, f.Type)
	assert.Equal(t, 5, f.Amount)
	assert.False(t, f.Submitting)
}

// Scenario A: out-of-range amount blocks submission locally.
func TestSubmitAmountOutOfRange(t *testing.T) {
	f := filledForm(t)
	f, _ = Apply(f, AmountSet{Value: 11})

	next, effects := Apply(f, Submitted{})
	assert.Empty(t, effects, "no network call may be issued")
	assert.False(t, next.Submitting)
	assert.Contains(t, next.Errors, "amount")
	// Entered values stay put.
	assert.Equal(t, "Frontend Developer", next.Role.Input)
	assert.Equal(t, "React, TypeScript", next.Tags.Serialize())
}

func TestSubmitEmptyRole(t *testing.T) {
	f := New("u", "n")
	f, _ = Apply(f, TechPicked{Value: "Go"})
	next, effects := Apply(f, Submitted{})
	assert.Empty(t, effects)
	assert.Contains(t, next.Errors, "role")
}

// Scenario B: happy path emits the request and navigates on success.
func TestSubmitSuccess(t *testing.T) {
	f := filledForm(t)
	client := &fakeClient{result: Result{Success: true, InterviewID: "abc123"}}
	r := NewRunner(f, client, nil)

	effects := r.Dispatch(context.Background(), Submitted{})

	require.Equal(t, 1, client.calls)
	assert.Equal(t, model.GenerateInterviewReq{
		Role:      "Frontend Developer",
		Level:     model.LevelJunior,
		Type:      model.TypeTechnical,
		Techstack: "React, TypeScript",
		Amount:    5,
		UserID:    "user-1",
	}, client.lastReq)

	require.Len(t, effects, 2)
	assert.Equal(t, Notify{Success: true, Message: MsgCreated}, effects[0])
	assert.Equal(t, Navigate{Path: "/interview/abc123"}, effects[1])
	assert.False(t, r.Form().Submitting)
}

// Scenario C: reported failure surfaces the collaborator's message verbatim,
// the form stays populated, and the guard is released for a retry.
func TestSubmitReportedFailure(t *testing.T) {
	f := filledForm(t)
	client := &fakeClient{result: Result{Message: "quota exceeded"}}
	r := NewRunner(f, client, nil)

	effects := r.Dispatch(context.Background(), Submitted{})

	require.Len(t, effects, 1)
	assert.Equal(t, Notify{Message: "quota exceeded"}, effects[0])
	assert.Equal(t, "Frontend Developer", r.Form().Role.Input)
	assert.Equal(t, "React, TypeScript", r.Form().Tags.Serialize())
	assert.False(t, r.Form().Submitting)

	// A second attempt must go out again.
	r.Dispatch(context.Background(), Submitted{})
	assert.Equal(t, 2, client.calls)
}

func TestSubmitTransportError(t *testing.T) {
	f := filledForm(t)
	client := &fakeClient{err: errors.New("connection refused")}
	r := NewRunner(f, client, nil)

	effects := r.Dispatch(context.Background(), Submitted{})

	require.Len(t, effects, 1)
	assert.Equal(t, Notify{Message: MsgTransportError}, effects[0])
	assert.False(t, r.Form().Submitting)
}

// Scenario D: Enter with no matching suggestion commits the raw text as a tag.
func TestTechEnterFreeFormCommit(t *testing.T) {
	f := New("u", "n")
	f, _ = Apply(f, TechChanged{Text: "Kotlin"})
	f, _ = Apply(f, TechPicked{Value: "Kotlin"}) // exhaust the only candidate
	f, _ = Apply(f, TechChanged{Text: "Kotlin"})
	assert.Empty(t, f.Tech.Suggestions, "candidate excluded by the selected tag")

	f, _ = Apply(f, TechEnter{})
	assert.Equal(t, TagSet{"Kotlin"}, f.Tags)
	assert.Equal(t, "", f.Tech.Input)

	// Text that matches no candidate at all takes the same path.
	f, _ = Apply(f, TechChanged{Text: "Cobol"})
	f, _ = Apply(f, TechEnter{})
	assert.Equal(t, TagSet{"Kotlin", "Cobol"}, f.Tags)
	assert.Equal(t, "", f.Tech.Input)
}

func TestTechEnterPicksFirstSuggestion(t *testing.T) {
	f := New("u", "n")
	f, _ = Apply(f, TechChanged{Text: "reac"})
	first := f.Tech.Suggestions[0]

	f, _ = Apply(f, TechEnter{})
	assert.Equal(t, TagSet{first}, f.Tags)
	assert.Equal(t, "", f.Tech.Input)
}

func TestTechEnterBlankInputNoop(t *testing.T) {
	f := New("u", "n")
	f, _ = Apply(f, TechChanged{Text: "   "})
	f, _ = Apply(f, TechEnter{})
	assert.Empty(t, f.Tags)
}

func TestTechBackspaceRemovesLastTag(t *testing.T) {
	f := New("u", "n")
	f, _ = Apply(f, TechPicked{Value: "React"})
	f, _ = Apply(f, TechPicked{Value: "Go"})

	f, _ = Apply(f, TechBackspace{})
	assert.Equal(t, TagSet{"React"}, f.Tags)

	// With text in the input, backspace edits the text, not the tags.
	f, _ = Apply(f, TechChanged{Text: "redi"})
	f, _ = Apply(f, TechBackspace{})
	assert.Equal(t, TagSet{"React"}, f.Tags)
}

func TestRoleFocusAfterPickReopensSuggestions(t *testing.T) {
	f := New("u", "n")
	f, _ = Apply(f, RoleChanged{Text: "frontend"})
	f, _ = Apply(f, RolePicked{Value: "Frontend Developer"})
	f, _ = Apply(f, RoleBlurred{})
	assert.False(t, f.Role.Open)

	f, _ = Apply(f, RoleFocused{})
	assert.True(t, f.Role.Open, "committed text still matches, so focus reopens the panel")
	assert.Contains(t, f.Role.Suggestions, "Frontend Developer")
}

func TestTechFocusExcludesSelectedTags(t *testing.T) {
	f := New("u", "n")
	f, _ = Apply(f, TechPicked{Value: "Kotlin"})
	f, _ = Apply(f, TechChanged{Text: "Kotlin"})
	f, _ = Apply(f, TechBlurred{})

	f, _ = Apply(f, TechFocused{})
	assert.False(t, f.Tech.Open, "the only candidate is already a tag")
}

func TestRoleEnterWithClosedPanelIsNoop(t *testing.T) {
	f := New("u", "n")
	f, _ = Apply(f, RoleChanged{Text: "zzzz"})
	next, effects := Apply(f, RoleEnter{})
	assert.Empty(t, effects)
	assert.Equal(t, "zzzz", next.Role.Input)
}

func TestRoleEnterCommitsFirstSuggestion(t *testing.T) {
	f := New("u", "n")
	f, _ = Apply(f, RoleChanged{Text: "frontend"})
	first := f.Role.Suggestions[0]

	f, _ = Apply(f, RoleEnter{})
	assert.Equal(t, first, f.Role.Input)
	assert.False(t, f.Role.Open)
}

// Scenario E: a second submit while one is pending is dropped by the guard.
func TestDoubleSubmitGuard(t *testing.T) {
	f := filledForm(t)
	client := &fakeClient{result: Result{Success: true, InterviewID: "abc123"}}
	r := NewRunner(f, client, nil)
	client.reenter = func() {
		reentry := r.Dispatch(context.Background(), Submitted{})
		assert.Empty(t, reentry, "second trigger while pending must be a no-op")
	}

	r.Dispatch(context.Background(), Submitted{})
	assert.Equal(t, 1, client.calls, "exactly one outbound call")
}

func TestValidationErrorsClearOnNextValidSubmit(t *testing.T) {
	f := filledForm(t)
	f, _ = Apply(f, AmountSet{Value: 0})
	f, _ = Apply(f, Submitted{})
	assert.NotEmpty(t, f.Errors)

	f, _ = Apply(f, AmountSet{Value: 3})
	f, effects := Apply(f, Submitted{})
	assert.Nil(t, f.Errors)
	require.Len(t, effects, 1)
	assert.IsType(t, CallGenerate{}, effects[0])
}
