package datastore

import "pathfinder-be/internal/entity"

// QuickStats are the homepage counters.
type QuickStats struct {
	TotalStreams int `json:"totalStreams"`
	TotalExams   int `json:"totalExams"`
	TotalCareers int `json:"totalCareers"`
}

// GetQuickStats counts career.json streams, exams across all categories and
// job opportunity groups across career.json streams.
func (s *Store) GetQuickStats() QuickStats {
	snap := s.snap.Load()

	stats := QuickStats{TotalStreams: len(snap.career.Streams)}
	for _, c := range snap.exams.ExamCategories {
		stats.TotalExams += len(c.Exams)
	}
	for _, stream := range snap.career.Streams {
		stats.TotalCareers += len(stream.JobOpportunities)
	}
	return stats
}

var trendingCareers = []entity.TrendingCareer{
	{Name: "Data Scientist", Growth: "25%", Salary: "₹8-30 LPA"},
	{Name: "AI Engineer", Growth: "30%", Salary: "₹10-35 LPA"},
	{Name: "Cybersecurity Analyst", Growth: "28%", Salary: "₹6-25 LPA"},
	{Name: "Digital Marketer", Growth: "20%", Salary: "₹4-15 LPA"},
}

// GetTrendingCareers returns a copy of the static trending list.
func (s *Store) GetTrendingCareers() []entity.TrendingCareer {
	out := make([]entity.TrendingCareer, len(trendingCareers))
	copy(out, trendingCareers)
	return out
}
