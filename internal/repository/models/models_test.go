package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionList_Value(t *testing.T) {
	t.Run("nil marshals as empty array", func(t *testing.T) {
		var list QuestionList
		v, err := list.Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", v)
	})

	t.Run("questions marshal to JSON", func(t *testing.T) {
		list := QuestionList{{
			Question:    "What is DNA?",
			Options:     []string{"A", "B", "C", "D"},
			Correct:     0,
			Explanation: "Deoxyribonucleic acid.",
		}}
		v, err := list.Value()
		require.NoError(t, err)
		assert.Contains(t, v.(string), `"question":"What is DNA?"`)
	})
}

func TestQuestionList_Scan(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  int
	}{
		{"nil", nil, 0},
		{"empty bytes", []byte(""), 0},
		{"json null", []byte("null"), 0},
		{"bytes", []byte(`[{"question":"Q","options":["A","B","C","D"],"correct":2,"explanation":"E"}]`), 1},
		{"string", `[{"question":"Q","options":["A","B","C","D"],"correct":2,"explanation":"E"}]`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list QuestionList
			require.NoError(t, list.Scan(tt.value))
			assert.Len(t, list, tt.want)
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		var list QuestionList
		assert.Error(t, list.Scan(42))
	})
}

func TestIntList_RoundTrip(t *testing.T) {
	v, err := IntList{1, 0, 3}.Value()
	require.NoError(t, err)

	var scanned IntList
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, IntList{1, 0, 3}, scanned)
}

func TestAttemptResultList_Scan(t *testing.T) {
	var list AttemptResultList
	require.NoError(t, list.Scan([]byte(`[{"questionIndex":0,"selected":1,"correct":1,"isCorrect":true,"explanation":"E"}]`)))
	require.Len(t, list, 1)
	assert.True(t, list[0].IsCorrect)
}
