// Package service holds the application services that orchestrate the
// domain ports: quiz generation from course materials and grading of
// submitted attempts.
package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"quizai/internal/cache"
	"quizai/internal/chunker"
	"quizai/internal/domain"
	"quizai/internal/logger"
	"quizai/internal/quizgen"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// combinedTextSeparator joins the extracted texts of multiple materials
// into one generation input.
const combinedTextSeparator = "\n\n---\n\n"

// titleMaterialLimit is how many material names appear in a generated
// quiz title before the rest collapse into an "and N more" suffix.
const titleMaterialLimit = 3

// GenerationResult carries the outcome of one quiz-generation request.
type GenerationResult struct {
	Quiz *domain.Quiz
	// Warnings records per-material extraction failures that did not
	// abort the batch, in caller-supplied material order.
	Warnings []string
	// Persisted is false when the quiz was generated but could not be
	// saved; the content is still usable by the caller.
	Persisted bool
}

// GenerationService orchestrates the pipeline from material references
// to a persisted quiz.
type GenerationService struct {
	courses   domain.CourseRepository
	materials domain.MaterialRepository
	texts     domain.ExtractedTextRepository
	quizzes   domain.QuizRepository
	storage   domain.ObjectStorage
	extractor domain.TextExtractor
	generator domain.TextGenerator
	cache     domain.Cache

	maxInputTokens int
	cacheTTL       time.Duration

	// extracting coalesces concurrent extractions of the same material
	// within this process; duplicate rows written by other processes
	// are tolerated and resolved on read.
	extracting singleflight.Group
}

// NewGenerationService creates a new GenerationService. cacheClient may
// be nil, in which case extracted texts are always read from the
// repository.
func NewGenerationService(
	courses domain.CourseRepository,
	materials domain.MaterialRepository,
	texts domain.ExtractedTextRepository,
	quizzes domain.QuizRepository,
	storage domain.ObjectStorage,
	extractor domain.TextExtractor,
	generator domain.TextGenerator,
	cacheClient domain.Cache,
	maxInputTokens int,
	cacheTTL time.Duration,
) *GenerationService {
	if maxInputTokens <= 0 {
		maxInputTokens = chunker.DefaultMaxTokens
	}
	return &GenerationService{
		courses:        courses,
		materials:      materials,
		texts:          texts,
		quizzes:        quizzes,
		storage:        storage,
		extractor:      extractor,
		generator:      generator,
		cache:          cacheClient,
		maxInputTokens: maxInputTokens,
		cacheTTL:       cacheTTL,
	}
}

// GenerateQuiz produces a quiz from the referenced materials of a course.
// Materials are processed in the given order; per-material extraction
// failures become warnings and only abort the request when every
// material fails.
func (s *GenerationService) GenerateQuiz(ctx context.Context, userID, courseID string, materialIDs []string) (*GenerationResult, error) {
	course, err := s.courses.GetCourse(ctx, courseID, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to look up course", err)
	}
	if course == nil {
		return nil, domain.NewNotFoundError("Course not found")
	}

	materialTexts := make([]string, 0, len(materialIDs))
	materialNames := make([]string, 0, len(materialIDs))
	warnings := make([]string, 0)

	for _, materialID := range materialIDs {
		material, err := s.materials.GetMaterial(ctx, materialID, userID)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Material %s: %v", materialID, err))
			continue
		}
		if material == nil {
			warnings = append(warnings, fmt.Sprintf("Material %s: not found", materialID))
			continue
		}
		materialNames = append(materialNames, material.DisplayName())

		text, err := s.extractedTextFor(ctx, material)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %s", material.DisplayName(), errorMessage(err)))
			continue
		}
		if text == "" {
			warnings = append(warnings, fmt.Sprintf("%s: No text content available", material.DisplayName()))
			continue
		}
		materialTexts = append(materialTexts, text)
	}

	if len(materialTexts) == 0 {
		msg := "Could not extract text from any materials."
		if len(warnings) > 0 {
			msg = fmt.Sprintf("%s Errors: %s", msg, strings.Join(warnings, "; "))
		}
		return nil, domain.NewNoUsableContentError(msg)
	}

	combined := strings.Join(materialTexts, combinedTextSeparator)
	chunks := chunker.Split(combined, s.maxInputTokens)
	if len(chunks) > 1 {
		logger.Get().Info("input exceeds token budget, generating from first chunk only",
			zap.Int("chunks", len(chunks)),
			zap.Int("inputChars", len(combined)))
	}

	prompt := quizgen.BuildPrompt(chunks[0])
	raw, err := s.generator.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions, err := quizgen.ParseQuizResponse(raw)
	if err != nil {
		return nil, err
	}

	quiz := domain.NewQuiz(userID, courseID, buildQuizTitle(course.Name, materialNames), questions)
	result := &GenerationResult{
		Quiz:      quiz,
		Warnings:  warnings,
		Persisted: true,
	}

	if err := s.quizzes.CreateQuiz(ctx, quiz); err != nil {
		// The generated content is still returned; only storage is lost.
		logger.Get().Error("failed to persist generated quiz",
			zap.String("courseID", courseID),
			zap.Error(err))
		result.Persisted = false
	}

	return result, nil
}

// extractedTextFor returns the material's extracted text, reading the
// cache first, then the repository, and finally extracting on the fly.
func (s *GenerationService) extractedTextFor(ctx context.Context, material *domain.Material) (string, error) {
	key := cache.ExtractedTextKey(material.ID)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			return cached, nil
		}
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("extracted text cache read failed",
				zap.String("materialID", material.ID),
				zap.Error(err))
		}
	}

	stored, err := s.texts.GetByMaterialID(ctx, material.ID, material.UserID)
	if err != nil {
		return "", domain.NewInternalError("Failed to look up extracted text", err)
	}
	if stored != nil {
		s.cacheExtractedText(ctx, key, stored.Text)
		return stored.Text, nil
	}

	text, err, _ := s.extracting.Do(material.ID, func() (interface{}, error) {
		// The flight may serve coalesced waiters from other requests,
		// so it must not inherit this caller's cancellation.
		return s.extract(context.WithoutCancel(ctx), material)
	})
	if err != nil {
		return "", err
	}

	s.cacheExtractedText(ctx, key, text.(string))
	return text.(string), nil
}

// extract downloads the material, extracts its text and persists the
// result. Persistence failure is logged but does not fail the call; the
// text is still usable in-memory for this request.
func (s *GenerationService) extract(ctx context.Context, material *domain.Material) (string, error) {
	localPath, err := s.storage.DownloadToLocal(ctx, material.FilePath)
	if err != nil {
		return "", err
	}
	defer func() {
		if removeErr := os.Remove(localPath); removeErr != nil {
			logger.Get().Warn("failed to remove temp file",
				zap.String("path", localPath),
				zap.Error(removeErr))
		}
	}()

	text, method, err := s.extractor.Extract(ctx, localPath, material.MimeType)
	if err != nil {
		return "", err
	}

	extracted := domain.NewExtractedText(material.ID, material.UserID, text, method)
	if err := s.texts.Create(ctx, extracted); err != nil {
		logger.Get().Error("failed to persist extracted text",
			zap.String("materialID", material.ID),
			zap.Error(err))
	}

	return text, nil
}

func (s *GenerationService) cacheExtractedText(ctx context.Context, key, text string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, text, s.cacheTTL); err != nil {
		logger.Get().Warn("extracted text cache write failed",
			zap.String("key", key),
			zap.Error(err))
	}
}

// buildQuizTitle synthesizes a title from the course name and up to
// three material names.
func buildQuizTitle(courseName string, materialNames []string) string {
	shown := materialNames
	suffix := ""
	if len(materialNames) > titleMaterialLimit {
		shown = materialNames[:titleMaterialLimit]
		suffix = fmt.Sprintf(" and %d more", len(materialNames)-titleMaterialLimit)
	}
	return fmt.Sprintf("Quiz: %s - %s%s", courseName, strings.Join(shown, ", "), suffix)
}

// errorMessage unwraps a DomainError to its message for warning lists;
// other errors render as-is.
func errorMessage(err error) string {
	if domainErr, ok := err.(*domain.DomainError); ok {
		return domainErr.Message
	}
	return err.Error()
}
