package entity

import "encoding/json"

type Exam struct {
	Name           string `json:"name" validate:"required"`
	FullForm       string `json:"fullForm,omitempty"`
	Purpose        string `json:"purpose"`
	ConductingBody string `json:"conductingBody,omitempty"`
	Level          string `json:"level,omitempty"`
	Eligibility    string `json:"eligibility,omitempty"`
	Frequency      string `json:"frequency,omitempty"`
	Website        string `json:"website,omitempty"`
}

type ExamCategory struct {
	Category string `json:"category" validate:"required"`
	Exams    []Exam `json:"exams" validate:"dive"`
}

// PreparationResource accepts either a bare title or a full object.
type PreparationResource struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Url         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

func (r *PreparationResource) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*r = PreparationResource{Name: name}
		return nil
	}
	type alias PreparationResource
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = PreparationResource(a)
	return nil
}
