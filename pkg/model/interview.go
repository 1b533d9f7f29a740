package model

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Level string

const (
	LevelJunior Level = "Junior"
	LevelMid    Level = "Mid"
	LevelSenior Level = "Senior"
)

func (l Level) IsValid() bool {
	switch l {
	case LevelJunior, LevelMid, LevelSenior:
		return true
	default:
		return false
	}
}

type InterviewType string

const (
	TypeTechnical  InterviewType = "Technical"
	TypeBehavioral InterviewType = "Behavioral"
	TypeMixed      InterviewType = "Mixed"
)

func (t InterviewType) IsValid() bool {
	switch t {
	case TypeTechnical, TypeBehavioral, TypeMixed:
		return true
	default:
		return false
	}
}

// Interview is the persisted document: one generated interview session.
type Interview struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Role      string             `bson:"role" json:"role"`
	Level     Level              `bson:"level" json:"level"`
	Type      InterviewType      `bson:"type" json:"type"`
	Techstack []string           `bson:"techstack" json:"techstack"`
	Questions []string           `bson:"questions" json:"questions"`
	Finalized bool               `bson:"finalized" json:"finalized"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// GenerateInterviewReq is the payload the interview form submits. The userid
// field mirrors the client payload but the authenticated user always wins.
type GenerateInterviewReq struct {
	Role      string        `json:"role"`
	Level     Level         `json:"level"`
	Type      InterviewType `json:"type"`
	Techstack string        `json:"techstack"`
	Amount    int           `json:"amount"`
	UserID    string        `json:"userid,omitempty"`
}

// Validate checks the aggregate the same way the form does before submitting,
// so a hand-crafted request cannot bypass the rules.
func (r *GenerateInterviewReq) Validate() error {
	if strings.TrimSpace(r.Role) == "" {
		return fmt.Errorf("role is required")
	}
	if !r.Level.IsValid() {
		return fmt.Errorf("invalid level %q", r.Level)
	}
	if !r.Type.IsValid() {
		return fmt.Errorf("invalid interview type %q", r.Type)
	}
	if strings.TrimSpace(r.Techstack) == "" {
		return fmt.Errorf("tech stack is required")
	}
	if r.Amount < 1 || r.Amount > 10 {
		return fmt.Errorf("amount must be between 1 and 10")
	}
	return nil
}

// SplitTechstack breaks the comma-joined serialization back into tags.
func (r *GenerateInterviewReq) SplitTechstack() []string {
	parts := strings.Split(r.Techstack, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GenerateInterviewRes is the envelope the interview form consumes.
type GenerateInterviewRes struct {
	Success     bool   `json:"success"`
	InterviewID string `json:"interviewId,omitempty"`
	Message     string `json:"message,omitempty"`
	Error       string `json:"error,omitempty"`
}
