package questions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticGenerator_KnownTypes(t *testing.T) {
	g := NewStaticGenerator()
	ctx := context.Background()

	for _, interviewType := range []string{"technical", "behavioral", "hr", "general"} {
		t.Run(interviewType, func(t *testing.T) {
			qs, err := g.Generate(ctx, Request{InterviewType: interviewType})
			require.NoError(t, err)
			require.NotEmpty(t, qs)
			for _, q := range qs {
				assert.NotEmpty(t, q.Text)
				assert.NotEmpty(t, q.Category)
				assert.Contains(t, []string{"easy", "medium", "hard"}, q.Difficulty)
			}
		})
	}
}

func TestStaticGenerator_UnknownTypeFallsBackToGeneral(t *testing.T) {
	g := NewStaticGenerator()

	fromUnknown, err := g.Generate(context.Background(), Request{InterviewType: "pair_programming"})
	require.NoError(t, err)
	fromGeneral, err := g.Generate(context.Background(), Request{InterviewType: "general"})
	require.NoError(t, err)
	assert.Equal(t, fromGeneral, fromUnknown)
}

func TestStaticGenerator_TypeLookupIsCaseInsensitive(t *testing.T) {
	g := NewStaticGenerator()

	upper, err := g.Generate(context.Background(), Request{InterviewType: "Technical"})
	require.NoError(t, err)
	lower, err := g.Generate(context.Background(), Request{InterviewType: "technical"})
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestStaticGenerator_CountCapsTheSet(t *testing.T) {
	g := NewStaticGenerator()

	qs, err := g.Generate(context.Background(), Request{InterviewType: "technical", Count: 2})
	require.NoError(t, err)
	assert.Len(t, qs, 2)

	// A count beyond the bank returns the whole bank.
	qs, err = g.Generate(context.Background(), Request{InterviewType: "technical", Count: 50})
	require.NoError(t, err)
	assert.Len(t, qs, 5)
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `[{"text":"q"}]`, `[{"text":"q"}]`},
		{"json fence", "```json\n[{\"text\":\"q\"}]\n```", `[{"text":"q"}]`},
		{"bare fence", "```\n[]\n```", `[]`},
		{"surrounding whitespace", "  []  ", `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSONBlock(tt.in))
		})
	}
}
