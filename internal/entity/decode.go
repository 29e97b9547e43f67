package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeLog collects entries that did not decode cleanly. The entry is kept
// with the fields that did parse, or skipped when nothing usable is left.
type decodeLog struct {
	issues []string
}

func (l *decodeLog) add(path string, err error) {
	l.issues = append(l.issues, fmt.Sprintf("%s: %v", path, err))
}

// DecodeIssues lists the paths that were dropped while decoding.
func (l *decodeLog) DecodeIssues() []string {
	return l.issues
}

func absent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// decodeRoot splits a document into its top-level fields. Valid JSON that is
// not an object yields no fields and an issue, only invalid JSON fails.
func decodeRoot(data []byte, log *decodeLog) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		if !json.Valid(data) {
			return nil, err
		}
		log.add("$", err)
		return map[string]json.RawMessage{}, nil
	}
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	return fields, nil
}

// decodeList decodes a JSON array one element at a time and skips elements
// that do not fit T.
func decodeList[T any](raw json.RawMessage, path string, log *decodeLog) []T {
	if absent(raw) {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		log.add(path, err)
		return nil
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			log.add(fmt.Sprintf("%s[%d]", path, i), err)
			continue
		}
		out = append(out, v)
	}
	return out
}

func decodeField(fields map[string]json.RawMessage, key string, dst interface{}, path string, log *decodeLog) {
	raw, ok := fields[key]
	if !ok || absent(raw) {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.add(path+"."+key, err)
	}
}

// decodeStream decodes a stream field by field when the strict decode fails,
// so one mistyped nested record only costs that record.
func decodeStream(raw json.RawMessage, path string, log *decodeLog) (Stream, bool) {
	var strict Stream
	if err := json.Unmarshal(raw, &strict); err == nil {
		return strict, true
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		log.add(path, err)
		return Stream{}, false
	}

	var s Stream
	decodeField(fields, "id", &s.Id, path, log)
	decodeField(fields, "name", &s.Name, path, log)
	decodeField(fields, "description", &s.Description, path, log)
	decodeField(fields, "icon", &s.Icon, path, log)
	s.Subjects = decodeList[string](fields["subjects"], path+".subjects", log)
	s.CareerPaths = decodeCareerPaths(fields["careerPaths"], path+".careerPaths", log)
	s.JobOpportunities = decodeList[JobOpportunity](fields["jobOpportunities"], path+".jobOpportunities", log)
	s.GovernmentExams = decodeList[GovernmentExam](fields["governmentExams"], path+".governmentExams", log)
	s.ProfessionalCourses = decodeList[ProfessionalCourse](fields["professionalCourses"], path+".professionalCourses", log)
	return s, true
}

func decodeCareerPaths(raw json.RawMessage, path string, log *decodeLog) []CareerPath {
	if absent(raw) {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		log.add(path, err)
		return nil
	}

	out := make([]CareerPath, 0, len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		var p CareerPath
		if err := json.Unmarshal(item, &p); err == nil {
			out = append(out, p)
			continue
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			log.add(itemPath, err)
			continue
		}
		p = CareerPath{}
		decodeField(fields, "stage", &p.Stage, itemPath, log)
		p.Options = decodeList[CareerOption](fields["options"], itemPath+".options", log)
		out = append(out, p)
	}
	return out
}

func decodeStreamList(raw json.RawMessage, path string, log *decodeLog) []Stream {
	if absent(raw) {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		log.add(path, err)
		return nil
	}

	out := make([]Stream, 0, len(items))
	for i, item := range items {
		if s, ok := decodeStream(item, fmt.Sprintf("%s[%d]", path, i), log); ok {
			out = append(out, s)
		}
	}
	return out
}

func decodeCategories(raw json.RawMessage, path string, log *decodeLog) []ExamCategory {
	if absent(raw) {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		log.add(path, err)
		return nil
	}

	out := make([]ExamCategory, 0, len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			log.add(itemPath, err)
			continue
		}
		var c ExamCategory
		decodeField(fields, "category", &c.Category, itemPath, log)
		c.Exams = decodeList[Exam](fields["exams"], itemPath+".exams", log)
		out = append(out, c)
	}
	return out
}

// decodeListMap decodes an object of arrays, keeping every key whose value
// is at least an array.
func decodeListMap[T any](raw json.RawMessage, path string, log *decodeLog) map[string][]T {
	if absent(raw) {
		return nil
	}
	var groups map[string]json.RawMessage
	if err := json.Unmarshal(raw, &groups); err != nil {
		log.add(path, err)
		return nil
	}

	out := make(map[string][]T, len(groups))
	for key, group := range groups {
		groupPath := fmt.Sprintf("%s[%q]", path, key)
		if items := decodeList[T](group, groupPath, log); items != nil {
			out[key] = items
		}
	}
	return out
}
