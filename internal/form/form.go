// Package form implements the interview-request form as a deterministic state
// machine: every UI event is a pure transition (Form, Event) -> (Form, effects),
// so the whole flow is unit-testable without a rendering environment. The
// Runner executes the effects against the real submission client.
package form

import (
	"strings"

	"github.com/Harsh-986/PrepWise/internal/suggest"
	"github.com/Harsh-986/PrepWise/pkg/model"
)

// Display caps for the two suggestion panels. The matcher itself is unbounded.
const (
	RoleSuggestionLimit = 10
	TechSuggestionLimit = 12
)

// User-facing notification texts.
const (
	MsgCreated        = "Interview created successfully!"
	MsgGenericFailure = "Failed to create interview. Please try again."
	MsgTransportError = "An error occurred. Please try again."
)

// Form is the complete state of one interview-request form instance. It is a
// value: transitions return a new Form and never mutate the old one.
type Form struct {
	UserID   string
	UserName string

	Role FieldState
	Tech FieldState
	Tags TagSet

	Level  model.Level
	Type   model.InterviewType
	Amount int

	// Submitting doubles as the re-entrancy guard: while true, Submitted
	// events are dropped so at most one request is ever in flight.
	Submitting bool
	Errors     map[string]string
}

// New returns a form with the default level/type/amount selections.
func New(userID, userName string) Form {
	return Form{
		UserID:   userID,
		UserName: userName,
		Level:    model.LevelMid,
		Type:     model.TypeMixed,
		Amount:   5,
	}
}

// Event is a discrete UI occurrence: a keystroke, focus change, pointer pick,
// submit attempt, or the resolution of the outbound call.
type Event interface{ isEvent() }

type (
	RoleChanged struct{ Text string }
	RoleEnter   struct{}
	RolePicked  struct{ Value string }
	RoleFocused struct{}
	RoleBlurred struct{}

	TechChanged   struct{ Text string }
	TechEnter     struct{}
	TechBackspace struct{}
	TechPicked    struct{ Value string }
	TechRemoved   struct{ Value string }
	TechFocused   struct{}
	TechBlurred   struct{}

	LevelSet  struct{ Value model.Level }
	TypeSet   struct{ Value model.InterviewType }
	AmountSet struct{ Value int }

	Submitted struct{}
	// SubmitResolved carries the outcome of the outbound call back into the
	// state machine. It is the only event not produced directly by the user.
	SubmitResolved struct{ Result Result }
)

func (RoleChanged) isEvent()    {}
func (RoleEnter) isEvent()      {}
func (RolePicked) isEvent()     {}
func (RoleFocused) isEvent()    {}
func (RoleBlurred) isEvent()    {}
func (TechChanged) isEvent()    {}
func (TechEnter) isEvent()      {}
func (TechBackspace) isEvent()  {}
func (TechPicked) isEvent()     {}
func (TechRemoved) isEvent()    {}
func (TechFocused) isEvent()    {}
func (TechBlurred) isEvent()    {}
func (LevelSet) isEvent()       {}
func (TypeSet) isEvent()        {}
func (AmountSet) isEvent()      {}
func (Submitted) isEvent()      {}
func (SubmitResolved) isEvent() {}

// Effect is a side effect requested by a transition. The pure core only ever
// describes effects; the Runner performs them.
type Effect interface{ isEffect() }

type (
	// CallGenerate issues the one outbound request to the generation service.
	CallGenerate struct{ Req model.GenerateInterviewReq }
	// Navigate moves the user to the given path.
	Navigate struct{ Path string }
	// Notify shows exactly one user-visible notification.
	Notify struct {
		Success bool
		Message string
	}
)

func (CallGenerate) isEffect() {}
func (Navigate) isEffect()     {}
func (Notify) isEffect()       {}

// Apply is the single transition function for the whole form.
func Apply(f Form, ev Event) (Form, []Effect) {
	switch e := ev.(type) {
	case RoleChanged:
		f.Role = f.Role.Change(e.Text, suggest.Roles, nil)
	case RoleEnter:
		// Enter commits the first open suggestion; with the panel closed it
		// does nothing, and in particular does not submit the form.
		if f.Role.Open && len(f.Role.Suggestions) > 0 {
			f.Role = f.Role.Commit(f.Role.Suggestions[0])
		}
	case RolePicked:
		f.Role = f.Role.Commit(e.Value)
	case RoleFocused:
		f.Role = f.Role.Focus(suggest.Roles, nil)
	case RoleBlurred:
		f.Role = f.Role.Blur()

	case TechChanged:
		f.Tech = f.Tech.Change(e.Text, suggest.TechStacks, f.Tags.ExcludeSet())
	case TechEnter:
		if strings.TrimSpace(f.Tech.Input) == "" {
			break
		}
		if len(f.Tech.Suggestions) > 0 {
			f.Tags = f.Tags.Add(f.Tech.Suggestions[0])
		} else {
			// Free-form commit: nothing matched, keep the user's own text.
			f.Tags = f.Tags.Add(f.Tech.Input)
		}
		f.Tech = f.Tech.Clear()
	case TechBackspace:
		if f.Tech.Input == "" {
			f.Tags = f.Tags.RemoveLast()
		}
	case TechPicked:
		f.Tags = f.Tags.Add(e.Value)
		f.Tech = f.Tech.Clear()
	case TechRemoved:
		f.Tags = f.Tags.Remove(e.Value)
	case TechFocused:
		f.Tech = f.Tech.Focus(suggest.TechStacks, f.Tags.ExcludeSet())
	case TechBlurred:
		f.Tech = f.Tech.Blur()

	case LevelSet:
		f.Level = e.Value
	case TypeSet:
		f.Type = e.Value
	case AmountSet:
		f.Amount = e.Value

	case Submitted:
		return applySubmit(f)
	case SubmitResolved:
		return applyResolved(f, e.Result)
	}
	return f, nil
}

func applySubmit(f Form) (Form, []Effect) {
	if f.Submitting {
		// A call is already in flight; drop the duplicate attempt.
		return f, nil
	}

	errs := f.validate()
	if len(errs) > 0 {
		f.Errors = errs
		return f, nil
	}

	f.Errors = nil
	f.Submitting = true
	return f, []Effect{CallGenerate{Req: f.Request()}}
}

func applyResolved(f Form, res Result) (Form, []Effect) {
	// Every branch releases the guard; entered values are never touched.
	f.Submitting = false
	if res.Success {
		return f, []Effect{
			Notify{Success: true, Message: MsgCreated},
			Navigate{Path: "/interview/" + res.InterviewID},
		}
	}
	msg := res.Message
	if msg == "" {
		msg = MsgGenericFailure
	}
	return f, []Effect{Notify{Message: msg}}
}

func (f Form) validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Role.Input) == "" {
		errs["role"] = "Role is required"
	}
	if !f.Level.IsValid() {
		errs["level"] = "Please select a level"
	}
	if !f.Type.IsValid() {
		errs["type"] = "Please select interview type"
	}
	if f.Tags.Serialize() == "" {
		errs["techstack"] = "Tech stack is required"
	}
	if f.Amount < 1 || f.Amount > 10 {
		errs["amount"] = "Maximum 10 questions allowed"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Request builds the outbound payload from the current field states.
func (f Form) Request() model.GenerateInterviewReq {
	return model.GenerateInterviewReq{
		Role:      strings.TrimSpace(f.Role.Input),
		Level:     f.Level,
		Type:      f.Type,
		Techstack: f.Tags.Serialize(),
		Amount:    f.Amount,
		UserID:    f.UserID,
	}
}
