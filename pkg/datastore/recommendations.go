package datastore

import "pathfinder-be/internal/entity"

// Recommendations aggregates the guidance attached to a stream. Every list is
// present, empty when the stream has none.
type Recommendations struct {
	Stream              entity.Stream               `json:"stream"`
	CareerPaths         []entity.CareerPath         `json:"careerPaths"`
	JobOpportunities    []entity.JobOpportunity     `json:"jobOpportunities"`
	GovernmentExams     []entity.GovernmentExam     `json:"governmentExams"`
	ProfessionalCourses []entity.ProfessionalCourse `json:"professionalCourses"`
}

func (s *Store) GetCareerRecommendations(streamId string) (*Recommendations, bool) {
	stream, ok := s.GetStream(streamId)
	if !ok {
		return nil, false
	}

	rec := &Recommendations{
		Stream:              *stream,
		CareerPaths:         stream.CareerPaths,
		JobOpportunities:    stream.JobOpportunities,
		GovernmentExams:     stream.GovernmentExams,
		ProfessionalCourses: stream.ProfessionalCourses,
	}
	if rec.CareerPaths == nil {
		rec.CareerPaths = []entity.CareerPath{}
	}
	if rec.JobOpportunities == nil {
		rec.JobOpportunities = []entity.JobOpportunity{}
	}
	if rec.GovernmentExams == nil {
		rec.GovernmentExams = []entity.GovernmentExam{}
	}
	if rec.ProfessionalCourses == nil {
		rec.ProfessionalCourses = []entity.ProfessionalCourse{}
	}
	return rec, true
}

func (s *Store) GetJobsByStream(streamId string) []entity.JobOpportunity {
	if stream, ok := s.GetStream(streamId); ok && stream.JobOpportunities != nil {
		return stream.JobOpportunities
	}
	return []entity.JobOpportunity{}
}

func (s *Store) GetExamsByStream(streamId string) []entity.GovernmentExam {
	if stream, ok := s.GetStream(streamId); ok && stream.GovernmentExams != nil {
		return stream.GovernmentExams
	}
	return []entity.GovernmentExam{}
}
