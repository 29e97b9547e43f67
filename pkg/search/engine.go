package search

import (
	"strings"

	"pathfinder-be/internal/entity"
)

type ResultType string

const (
	TypeStream ResultType = "stream"
	TypeExam   ResultType = "exam"
)

const (
	IconStream = "fas fa-stream"
	IconExam   = "fas fa-file-alt"
)

// Result is a flat projection of a matched stream or exam.
type Result struct {
	Type        ResultType     `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Category    string         `json:"category,omitempty"`
	Stream      *entity.Stream `json:"stream,omitempty"`
	Exam        *entity.Exam   `json:"exam,omitempty"`
}

// Catalog is the read side of the data store the engine scans.
type Catalog interface {
	GetAllStreams() []entity.Stream
	GetStreamCatalog() []entity.Stream
	GetExamCategories() []entity.ExamCategory
}

type Engine struct {
	catalog Catalog
}

func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Search matches term case-insensitively as a substring of stream names and
// descriptions, then exam names, full forms and purposes. Results keep source
// order: career.json streams, streams.json streams whose name was not already
// returned, then exams by category. An empty term yields no results.
func (e *Engine) Search(term string) []Result {
	results := []Result{}
	if term == "" {
		return results
	}
	needle := strings.ToLower(term)

	seenStreams := make(map[string]bool)
	addStream := func(stream entity.Stream, dedup bool) {
		if !contains(stream.Name, needle) && !contains(stream.Description, needle) {
			return
		}
		if dedup && seenStreams[stream.Name] {
			return
		}
		seenStreams[stream.Name] = true
		results = append(results, Result{
			Type:        TypeStream,
			Name:        stream.Name,
			Description: stream.Description,
			Icon:        IconStream,
			Stream:      &stream,
		})
	}

	for _, stream := range e.catalog.GetAllStreams() {
		addStream(stream, false)
	}
	for _, stream := range e.catalog.GetStreamCatalog() {
		addStream(stream, true)
	}

	for _, category := range e.catalog.GetExamCategories() {
		for _, exam := range category.Exams {
			if !contains(exam.Name, needle) &&
				!(exam.FullForm != "" && contains(exam.FullForm, needle)) &&
				!contains(exam.Purpose, needle) {
				continue
			}
			results = append(results, Result{
				Type:        TypeExam,
				Name:        exam.Name,
				Description: exam.Purpose,
				Icon:        IconExam,
				Category:    category.Category,
				Exam:        &exam,
			})
		}
	}

	return results
}

func contains(field, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(field), lowerNeedle)
}
