package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	assert.Equal(t, "quizai:extraction:text:abc", GenerateCacheKey("extraction", "text", "abc"))
	assert.Equal(t, "quizai:svc:obj:id:p1_p2", GenerateCacheKey("svc", "obj", "id", "p1", "p2"))
}

func TestExtractedTextKey(t *testing.T) {
	assert.Equal(t, "quizai:extraction:text:01HMAT", ExtractedTextKey("01HMAT"))
}
