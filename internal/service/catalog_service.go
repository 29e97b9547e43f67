package service

import (
	"fmt"

	"pathfinder-be/internal/dto"
	"pathfinder-be/internal/entity"
	"pathfinder-be/pkg/datastore"
)

type ICatalogService interface {
	Status() *dto.StatusResponse
	GetAllStreams() []entity.Stream
	GetStream(id string) (*entity.Stream, error)
	GetRecommendations(streamId string) (*datastore.Recommendations, error)
	GetJobsByStream(streamId string) ([]entity.JobOpportunity, error)
	GetExamsByStream(streamId string) ([]entity.GovernmentExam, error)
	GetExamCategories() []entity.ExamCategory
	GetExamsByCategory(category string) []entity.Exam
	GetExamsByLevel(level string) []entity.Exam
	GetPreparationResources() map[string][]entity.PreparationResource
	GetTrendingCareers() []entity.TrendingCareer
	GetStats() datastore.QuickStats
}

type catalogService struct {
	store *datastore.Store
}

func NewCatalogService(store *datastore.Store) ICatalogService {
	return &catalogService{store: store}
}

func (s *catalogService) Status() *dto.StatusResponse {
	status := s.store.Status()
	return &dto.StatusResponse{
		Ready:    status.Ready,
		Degraded: status.Degraded,
		Warnings: status.Warnings,
		LoadedAt: status.LoadedAt,
	}
}

func (s *catalogService) GetAllStreams() []entity.Stream {
	return s.store.GetAllStreams()
}

func (s *catalogService) GetStream(id string) (*entity.Stream, error) {
	stream, ok := s.store.GetStream(id)
	if !ok {
		return nil, fmt.Errorf("stream %q: %w", id, datastore.ErrNotFound)
	}
	return stream, nil
}

func (s *catalogService) GetRecommendations(streamId string) (*datastore.Recommendations, error) {
	rec, ok := s.store.GetCareerRecommendations(streamId)
	if !ok {
		return nil, fmt.Errorf("stream %q: %w", streamId, datastore.ErrNotFound)
	}
	return rec, nil
}

func (s *catalogService) GetJobsByStream(streamId string) ([]entity.JobOpportunity, error) {
	if _, err := s.GetStream(streamId); err != nil {
		return nil, err
	}
	return s.store.GetJobsByStream(streamId), nil
}

func (s *catalogService) GetExamsByStream(streamId string) ([]entity.GovernmentExam, error) {
	if _, err := s.GetStream(streamId); err != nil {
		return nil, err
	}
	return s.store.GetExamsByStream(streamId), nil
}

func (s *catalogService) GetExamCategories() []entity.ExamCategory {
	return s.store.GetExamCategories()
}

func (s *catalogService) GetExamsByCategory(category string) []entity.Exam {
	return s.store.GetExamsByCategory(category)
}

func (s *catalogService) GetExamsByLevel(level string) []entity.Exam {
	return s.store.GetExamsByLevel(level)
}

func (s *catalogService) GetPreparationResources() map[string][]entity.PreparationResource {
	return s.store.GetPreparationResources()
}

func (s *catalogService) GetTrendingCareers() []entity.TrendingCareer {
	return s.store.GetTrendingCareers()
}

func (s *catalogService) GetStats() datastore.QuickStats {
	return s.store.GetQuickStats()
}
