package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ProgramAdvisor/internal/domain"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		background string
		interest   string
		startup    string
		want       domain.Decision
	}{
		{
			name: "all empty is a tie",
			want: domain.Decision{Tie: true},
		},
		{
			name:       "technical background wins",
			background: "программирование",
			want:       domain.Decision{Slug: domain.SlugAI},
		},
		{
			name:    "startup answer counts for product only",
			startup: "стартап",
			want:    domain.Decision{Slug: domain.SlugAIProduct},
		},
		{
			name:       "one against one is a tie",
			background: "программирование",
			startup:    "стартап",
			want:       domain.Decision{Tie: true},
		},
		{
			name:       "management profile",
			background: "менеджмент и бизнес",
			interest:   "управление продуктами",
			startup:    "стартап",
			// менеджмент, бизнес, управление, стартап = 4 against 0.
			want: domain.Decision{Slug: domain.SlugAIProduct},
		},
		{
			name:       "matching is case-insensitive",
			background: "Python и ML",
			want:       domain.Decision{Slug: domain.SlugAI},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.background, tt.interest, tt.startup))
		})
	}
}

func TestClassifyNoDoubleCountAcrossFields(t *testing.T) {
	t.Parallel()

	// The same technical keyword in two fields still contributes one
	// point, so one product keyword keeps the scores tied.
	decision := Classify("программирование", "программирование", "стартап")
	assert.True(t, decision.Tie, "keyword repeated across fields must not be double-counted")

	// Repeating the keyword inside one field changes nothing either.
	base := Classify("python", "", "")
	repeated := Classify("python python python", "", "")
	assert.Equal(t, base, repeated)
}
