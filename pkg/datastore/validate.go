package datastore

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validateSnapshot reports malformed entries: parts the decoder had to drop,
// then entries that decoded but miss required fields. Accessors keep serving
// whatever was parsed.
func (s *Store) validateSnapshot(snap *snapshot) []string {
	warnings := []string{}

	for _, doc := range []struct {
		name   DatasetName
		issues []string
	}{
		{DatasetCareer, snap.career.DecodeIssues()},
		{DatasetStreams, snap.streams.DecodeIssues()},
		{DatasetExams, snap.exams.DecodeIssues()},
	} {
		for _, issue := range doc.issues {
			warnings = append(warnings, fmt.Sprintf("%s %s", doc.name.File(), issue))
		}
	}

	seen := make(map[string]int)
	for i, stream := range snap.career.Streams {
		warnings = append(warnings, s.describe(fmt.Sprintf("%s streams[%d]", DatasetCareer.File(), i), stream)...)
		if stream.Id == "" {
			continue
		}
		if first, dup := seen[stream.Id]; dup {
			warnings = append(warnings, fmt.Sprintf("%s streams[%d]: duplicate id %q, first seen at streams[%d]",
				DatasetCareer.File(), i, stream.Id, first))
			continue
		}
		seen[stream.Id] = i
	}

	for _, key := range snap.streams.Keys {
		warnings = append(warnings, s.describe(fmt.Sprintf("%s streams[%q]", DatasetStreams.File(), key), snap.streams.Streams[key])...)
	}

	for i, category := range snap.exams.ExamCategories {
		warnings = append(warnings, s.describe(fmt.Sprintf("%s examCategories[%d]", DatasetExams.File(), i), category)...)
	}

	for _, w := range warnings {
		s.logger.Warn(logModule, "Malformed dataset entry", map[string]interface{}{"warning": w})
	}
	return warnings
}

func (s *Store) describe(where string, v interface{}) []string {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{fmt.Sprintf("%s: %v", where, err)}
	}

	out := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, fmt.Sprintf("%s: %s failed %q", where, fe.Namespace(), fe.Tag()))
	}
	return out
}
