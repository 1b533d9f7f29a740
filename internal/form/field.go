package form

import (
	"strings"

	"github.com/Harsh-986/PrepWise/internal/suggest"
)

// FieldState is one autocomplete input: the raw text, the suggestions derived
// from it, and whether the suggestion panel is open. The panel is open only
// while both the input and the suggestion list are non-empty.
type FieldState struct {
	Input       string
	Suggestions []string
	Open        bool
}

// Change recomputes the state for a new input value. Suggestions are rebuilt
// from scratch on every keystroke.
func (f FieldState) Change(text string, candidates []string, exclude map[string]struct{}) FieldState {
	next := FieldState{Input: text}
	if strings.TrimSpace(text) == "" {
		return next
	}
	next.Suggestions = suggest.Match(text, candidates, exclude)
	next.Open = len(next.Suggestions) > 0
	return next
}

// Focus reopens the panel when there is text and the matcher yields at least
// one hit for it; focusing an empty field keeps the panel closed. The match is
// recomputed rather than read from the stored slice, because a commit leaves
// the input populated with no suggestions behind it.
func (f FieldState) Focus(candidates []string, exclude map[string]struct{}) FieldState {
	if strings.TrimSpace(f.Input) == "" {
		return f
	}
	f.Suggestions = suggest.Match(f.Input, candidates, exclude)
	f.Open = len(f.Suggestions) > 0
	return f
}

// Blur closes the panel without committing anything.
func (f FieldState) Blur() FieldState {
	f.Open = false
	return f
}

// Commit replaces the input with the chosen value and closes the panel.
// Used by the single-value role field.
func (f FieldState) Commit(value string) FieldState {
	return FieldState{Input: value}
}

// Clear resets the field entirely. Used by the tech field after a tag is
// committed.
func (f FieldState) Clear() FieldState {
	return FieldState{}
}
