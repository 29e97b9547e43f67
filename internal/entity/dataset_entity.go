package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CareerDataset is the content of career.json.
type CareerDataset struct {
	Streams []Stream `json:"streams"`
	Exams   []Exam   `json:"exams"`
	Careers []Career `json:"careers"`

	decodeLog
}

func (d *CareerDataset) UnmarshalJSON(data []byte) error {
	d.decodeLog = decodeLog{}
	fields, err := decodeRoot(data, &d.decodeLog)
	if err != nil {
		return err
	}
	d.Streams = decodeStreamList(fields["streams"], "streams", &d.decodeLog)
	d.Exams = decodeList[Exam](fields["exams"], "exams", &d.decodeLog)
	d.Careers = decodeList[Career](fields["careers"], "careers", &d.decodeLog)
	return nil
}

func NewCareerDataset() *CareerDataset {
	return &CareerDataset{Streams: []Stream{}, Exams: []Exam{}, Careers: []Career{}}
}

// Normalize replaces absent collections with empty ones.
func (d *CareerDataset) Normalize() {
	if d.Streams == nil {
		d.Streams = []Stream{}
	}
	if d.Exams == nil {
		d.Exams = []Exam{}
	}
	if d.Careers == nil {
		d.Careers = []Career{}
	}
}

// StreamsDataset is the content of streams.json. Keys keeps the document
// order of the streams object so scans are deterministic.
type StreamsDataset struct {
	Streams map[string]Stream `json:"streams"`
	Keys    []string          `json:"-"`

	decodeLog
}

func NewStreamsDataset() *StreamsDataset {
	return &StreamsDataset{Streams: map[string]Stream{}, Keys: []string{}}
}

func (d *StreamsDataset) UnmarshalJSON(data []byte) error {
	d.decodeLog = decodeLog{}
	d.Streams = map[string]Stream{}
	d.Keys = []string{}

	fields, err := decodeRoot(data, &d.decodeLog)
	if err != nil {
		return err
	}
	raw := fields["streams"]
	if absent(raw) {
		return nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		d.add("streams", err)
		return nil
	}
	keys, err := objectKeys(raw)
	if err != nil {
		d.add("streams", err)
		return nil
	}

	for _, k := range keys {
		s, ok := decodeStream(entries[k], fmt.Sprintf("streams[%q]", k), &d.decodeLog)
		if !ok {
			continue
		}
		// entries are keyed by id and often omit it
		if s.Id == "" {
			s.Id = k
		}
		d.Streams[k] = s
		d.Keys = append(d.Keys, k)
	}
	return nil
}

func (d *StreamsDataset) Normalize() {
	if d.Streams == nil {
		d.Streams = map[string]Stream{}
	}
	if d.Keys == nil {
		d.Keys = []string{}
	}
}

// Values returns the streams in document order.
func (d *StreamsDataset) Values() []Stream {
	out := make([]Stream, 0, len(d.Keys))
	for _, k := range d.Keys {
		if s, ok := d.Streams[k]; ok {
			out = append(out, s)
		}
	}
	return out
}

// ExamsDataset is the content of exams.json.
type ExamsDataset struct {
	ExamCategories       []ExamCategory                   `json:"examCategories"`
	ExamLevels           map[string][]Exam                `json:"examLevels"`
	PreparationResources map[string][]PreparationResource `json:"preparationResources,omitempty"`

	decodeLog
}

func (d *ExamsDataset) UnmarshalJSON(data []byte) error {
	d.decodeLog = decodeLog{}
	fields, err := decodeRoot(data, &d.decodeLog)
	if err != nil {
		return err
	}
	d.ExamCategories = decodeCategories(fields["examCategories"], "examCategories", &d.decodeLog)
	d.ExamLevels = decodeListMap[Exam](fields["examLevels"], "examLevels", &d.decodeLog)
	d.PreparationResources = decodeListMap[PreparationResource](fields["preparationResources"], "preparationResources", &d.decodeLog)
	return nil
}

func NewExamsDataset() *ExamsDataset {
	return &ExamsDataset{
		ExamCategories:       []ExamCategory{},
		ExamLevels:           map[string][]Exam{},
		PreparationResources: map[string][]PreparationResource{},
	}
}

func (d *ExamsDataset) Normalize() {
	if d.ExamCategories == nil {
		d.ExamCategories = []ExamCategory{}
	}
	for i := range d.ExamCategories {
		if d.ExamCategories[i].Exams == nil {
			d.ExamCategories[i].Exams = []Exam{}
		}
	}
	if d.ExamLevels == nil {
		d.ExamLevels = map[string][]Exam{}
	}
	if d.PreparationResources == nil {
		d.PreparationResources = map[string][]PreparationResource{}
	}
}

// objectKeys lists the keys of a JSON object in the order they appear.
func objectKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	seen := make(map[string]bool)
	keys := []string{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
		// duplicate keys keep their first position, the value is the last one
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys, nil
}
