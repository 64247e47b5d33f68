package service

import (
	"context"
	"encoding/json"
	"fe_exam_backend/internal/model"
	"fe_exam_backend/internal/repository"
	"fe_exam_backend/pkg/logger"
	"math/rand"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	questionCacheKey = "questions:catalog"
	questionCacheTTL = 5 * time.Minute
)

// QuestionService serves the question catalog for practice mode. The full
// catalog is cached in Redis with a short TTL; derived per-user analytics
// are never cached here.
type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	RDB          *redis.Client
}

func NewQuestionService(questionRepo *repository.QuestionRepository, rdb *redis.Client) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		RDB:          rdb,
	}
}

func (s *QuestionService) GetQuestion(id uint) (*model.Question, error) {
	return s.QuestionRepo.FindByID(id)
}

// List returns catalog questions, optionally filtered by genre and capped
// at limit. Filtering happens over the cached catalog so one cache entry
// serves every genre view.
func (s *QuestionService) List(genre string, limit int) ([]model.Question, error) {
	questions, err := s.catalog()
	if err != nil {
		return nil, err
	}

	if genre != "" {
		filtered := questions[:0:0]
		for _, q := range questions {
			if q.Genre == genre {
				filtered = append(filtered, q)
			}
		}
		questions = filtered
	}

	if limit > 0 && len(questions) > limit {
		questions = questions[:limit]
	}
	return questions, nil
}

// RandomSet picks count questions at random, optionally within one genre.
// Shuffling happens in process so the selection is dialect independent.
func (s *QuestionService) RandomSet(genre string, count int) ([]model.Question, error) {
	questions, err := s.List(genre, 0)
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	if count > 0 && len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

func (s *QuestionService) Genres() ([]string, error) {
	return s.QuestionRepo.Genres()
}

// InvalidateCache drops the cached catalog. Called after bank imports.
func (s *QuestionService) InvalidateCache() {
	if s.RDB == nil {
		return
	}
	if err := s.RDB.Del(context.Background(), questionCacheKey).Err(); err != nil {
		logger.Log.Warn("question cache invalidation failed", zap.Error(err))
	}
}

func (s *QuestionService) catalog() ([]model.Question, error) {
	ctx := context.Background()

	if s.RDB != nil {
		if data, err := s.RDB.Get(ctx, questionCacheKey).Bytes(); err == nil {
			var cached []model.Question
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	questions, err := s.QuestionRepo.ListOrdered()
	if err != nil {
		return nil, err
	}

	if s.RDB != nil {
		if data, err := json.Marshal(questions); err == nil {
			if err := s.RDB.Set(ctx, questionCacheKey, data, questionCacheTTL).Err(); err != nil {
				logger.Log.Warn("question cache write failed", zap.Error(err))
			}
		}
	}

	return questions, nil
}
