package entity

import (
	"encoding/json"
)

// Stream is an academic track such as Science, Commerce or Arts.
type Stream struct {
	Id                  string               `json:"id" validate:"required"`
	Name                string               `json:"name" validate:"required"`
	Description         string               `json:"description"`
	Icon                string               `json:"icon,omitempty"`
	Subjects            []string             `json:"subjects,omitempty"`
	CareerPaths         []CareerPath         `json:"careerPaths,omitempty" validate:"dive"`
	JobOpportunities    []JobOpportunity     `json:"jobOpportunities,omitempty" validate:"dive"`
	GovernmentExams     []GovernmentExam     `json:"governmentExams,omitempty" validate:"dive"`
	ProfessionalCourses []ProfessionalCourse `json:"professionalCourses,omitempty" validate:"dive"`
}

// CareerPath groups the options available at one stage, e.g. "After 12th".
type CareerPath struct {
	Stage   string         `json:"stage" validate:"required"`
	Options []CareerOption `json:"options,omitempty" validate:"dive"`
}

type CareerOption struct {
	Name            string   `json:"name" validate:"required"`
	Degrees         []string `json:"degrees,omitempty"`
	Exams           []string `json:"exams,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
}

type JobOpportunity struct {
	Field       string   `json:"field" validate:"required"`
	Jobs        []string `json:"jobs,omitempty"`
	SalaryRange string   `json:"salaryRange,omitempty"`
}

// UnmarshalJSON accepts a bare stage name.
func (p *CareerPath) UnmarshalJSON(data []byte) error {
	var stage string
	if err := json.Unmarshal(data, &stage); err == nil {
		*p = CareerPath{Stage: stage}
		return nil
	}
	type alias CareerPath
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = CareerPath(a)
	return nil
}

// UnmarshalJSON accepts a bare option name.
func (o *CareerOption) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*o = CareerOption{Name: name}
		return nil
	}
	type alias CareerOption
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*o = CareerOption(a)
	return nil
}

// UnmarshalJSON accepts a bare field name.
func (j *JobOpportunity) UnmarshalJSON(data []byte) error {
	var field string
	if err := json.Unmarshal(data, &field); err == nil {
		*j = JobOpportunity{Field: field}
		return nil
	}
	type alias JobOpportunity
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*j = JobOpportunity(a)
	return nil
}

// GovernmentExam accepts either a bare name or a full object.
type GovernmentExam struct {
	Name        string `json:"name" validate:"required"`
	Level       string `json:"level,omitempty"`
	Eligibility string `json:"eligibility,omitempty"`
	Description string `json:"description,omitempty"`
}

func (g *GovernmentExam) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*g = GovernmentExam{Name: name}
		return nil
	}
	type alias GovernmentExam
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*g = GovernmentExam(a)
	return nil
}

// ProfessionalCourse accepts either a bare name or a full object.
type ProfessionalCourse struct {
	Name        string `json:"name" validate:"required"`
	Duration    string `json:"duration,omitempty"`
	Eligibility string `json:"eligibility,omitempty"`
	Description string `json:"description,omitempty"`
}

func (p *ProfessionalCourse) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*p = ProfessionalCourse{Name: name}
		return nil
	}
	type alias ProfessionalCourse
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = ProfessionalCourse(a)
	return nil
}

// Career is a standalone career profile listed in career.json.
type Career struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Stream      string `json:"stream,omitempty"`
	SalaryRange string `json:"salaryRange,omitempty"`
	Growth      string `json:"growth,omitempty"`
}

// TrendingCareer is served from a static list, not from a dataset.
type TrendingCareer struct {
	Name   string `json:"name"`
	Growth string `json:"growth"`
	Salary string `json:"salary"`
}
