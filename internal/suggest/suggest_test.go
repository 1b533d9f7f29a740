package suggest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCaseInsensitiveSubstring(t *testing.T) {
	got := Match("react", TechStacks, nil)
	require.NotEmpty(t, got)
	for _, m := range got {
		assert.Contains(t, strings.ToLower(m), "react")
	}
	assert.Contains(t, got, "React")
	assert.Contains(t, got, "React Native")
}

func TestMatchPreservesCandidateOrder(t *testing.T) {
	candidates := []string{"Go", "Django", "Golang", "MongoDB"}
	got := Match("go", candidates, nil)
	assert.Equal(t, []string{"Go", "Django", "Golang", "MongoDB"}, got)
}

func TestMatchBlankQuery(t *testing.T) {
	assert.Empty(t, Match("", TechStacks, nil))
	assert.Empty(t, Match("   ", Roles, nil))
}

func TestMatchExclude(t *testing.T) {
	exclude := map[string]struct{}{"React": {}}
	got := Match("react", TechStacks, exclude)
	assert.NotContains(t, got, "React")
	assert.Contains(t, got, "React Native")
}

func TestMatchNoHits(t *testing.T) {
	assert.Empty(t, Match("zzzzzz", TechStacks, nil))
}

func TestTruncate(t *testing.T) {
	in := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "b"}, Truncate(in, 2))
	assert.Equal(t, in, Truncate(in, 5))
	assert.Equal(t, in, Truncate(in, 0))
}
