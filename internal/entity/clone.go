package entity

import "slices"

// Clone returns a deep copy that shares no slices with s.
func (s Stream) Clone() Stream {
	out := s
	out.Subjects = slices.Clone(s.Subjects)
	out.CareerPaths = CloneCareerPaths(s.CareerPaths)
	out.JobOpportunities = CloneJobOpportunities(s.JobOpportunities)
	out.GovernmentExams = slices.Clone(s.GovernmentExams)
	out.ProfessionalCourses = slices.Clone(s.ProfessionalCourses)
	return out
}

func CloneStreams(streams []Stream) []Stream {
	if streams == nil {
		return nil
	}
	out := make([]Stream, len(streams))
	for i, s := range streams {
		out[i] = s.Clone()
	}
	return out
}

func CloneCareerPaths(paths []CareerPath) []CareerPath {
	if paths == nil {
		return nil
	}
	out := make([]CareerPath, len(paths))
	for i, p := range paths {
		out[i] = CareerPath{Stage: p.Stage}
		if p.Options != nil {
			out[i].Options = make([]CareerOption, len(p.Options))
			for j, o := range p.Options {
				o.Degrees = slices.Clone(o.Degrees)
				o.Exams = slices.Clone(o.Exams)
				o.Specializations = slices.Clone(o.Specializations)
				out[i].Options[j] = o
			}
		}
	}
	return out
}

func CloneJobOpportunities(jobs []JobOpportunity) []JobOpportunity {
	if jobs == nil {
		return nil
	}
	out := make([]JobOpportunity, len(jobs))
	for i, j := range jobs {
		j.Jobs = slices.Clone(j.Jobs)
		out[i] = j
	}
	return out
}

func CloneExamCategories(categories []ExamCategory) []ExamCategory {
	if categories == nil {
		return nil
	}
	out := make([]ExamCategory, len(categories))
	for i, c := range categories {
		out[i] = ExamCategory{Category: c.Category, Exams: slices.Clone(c.Exams)}
	}
	return out
}
