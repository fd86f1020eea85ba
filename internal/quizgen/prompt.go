// Package quizgen covers the round trip to the external text-generation
// service: prompt assembly, the completion call, and strict parsing of the
// unstructured response into validated questions.
package quizgen

import "fmt"

const promptTemplate = `You are an expert educational content creator. Generate exactly 10 high-quality multiple-choice quiz questions based on the following course material.

IMPORTANT REQUIREMENTS:
1. Generate EXACTLY 10 questions - no more, no less
2. Each question must be relevant to the content and test understanding
3. Questions should cover different aspects of the material
4. Each question must have exactly 4 options (A, B, C, D)
5. The correct answer index must be 0, 1, 2, or 3 (representing the position in the options array)
6. Include a clear explanation for each correct answer

OUTPUT FORMAT (JSON array only, no markdown, no extra text):
[
  {
    "question": "Question text here?",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correct": 0,
    "explanation": "Explanation of why this is the correct answer."
  },
  ...
]

Course Material:
%s

Generate the quiz questions now:`

// BuildPrompt embeds the text chunk into the fixed instruction template.
// Deterministic, no side effects.
func BuildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}
