package service

import (
	"context"
	"time"

	"quizai/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) GetCourse(ctx context.Context, id, userID string) (*domain.Course, error) {
	args := m.Called(ctx, id, userID)
	if course, ok := args.Get(0).(*domain.Course); ok {
		return course, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) GetMaterial(ctx context.Context, id, userID string) (*domain.Material, error) {
	args := m.Called(ctx, id, userID)
	if material, ok := args.Get(0).(*domain.Material); ok {
		return material, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockExtractedTextRepository struct {
	mock.Mock
}

func (m *MockExtractedTextRepository) GetByMaterialID(ctx context.Context, materialID, userID string) (*domain.ExtractedText, error) {
	args := m.Called(ctx, materialID, userID)
	if text, ok := args.Get(0).(*domain.ExtractedText); ok {
		return text, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExtractedTextRepository) Create(ctx context.Context, text *domain.ExtractedText) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) GetQuiz(ctx context.Context, id, userID string) (*domain.Quiz, error) {
	args := m.Called(ctx, id, userID)
	if quiz, ok := args.Get(0).(*domain.Quiz); ok {
		return quiz, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuizRepository) ListQuizzesByCourse(ctx context.Context, courseID, userID string) ([]*domain.Quiz, error) {
	args := m.Called(ctx, courseID, userID)
	if quizzes, ok := args.Get(0).([]*domain.Quiz); ok {
		return quizzes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuizRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) DownloadToLocal(ctx context.Context, storagePath string) (string, error) {
	args := m.Called(ctx, storagePath)
	return args.String(0), args.Error(1)
}

type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(ctx context.Context, path, mimeType string) (string, string, error) {
	args := m.Called(ctx, path, mimeType)
	return args.String(0), args.String(1), args.Error(2)
}

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
