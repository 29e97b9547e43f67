package datastore

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const careerJSON = `{
	"streams": [
		{
			"id": "science",
			"name": "Science Stream",
			"description": "Engineering, Medical, Research careers",
			"careerPaths": [
				{"stage": "After 12th", "options": [{"name": "Engineering", "degrees": ["BTech/BE (4 years)"], "exams": ["JEE Main"]}]}
			],
			"jobOpportunities": [
				{"field": "Engineering & Technology", "jobs": ["Software Engineer"], "salaryRange": "₹4-25 LPA"},
				{"field": "Healthcare", "jobs": ["Doctor"]}
			],
			"governmentExams": ["ISRO Scientist"]
		},
		{
			"id": "commerce",
			"name": "Commerce Stream",
			"description": "Business, Finance, Accounting careers",
			"jobOpportunities": [{"field": "Accounting & Finance", "jobs": ["Chartered Accountant"]}]
		}
	],
	"exams": [],
	"careers": [{"name": "Data Scientist", "stream": "science"}]
}`

const streamsJSON = `{
	"streams": {
		"science": {"name": "Science (Detailed)", "description": "PCM and PCB combinations"},
		"arts": {"name": "Arts Stream", "description": "Civil Services, Humanities, Creative arts"},
		"vocational": {"name": "Vocational Courses", "description": "Skill based programs"}
	}
}`

const examsJSON = `{
	"examCategories": [
		{
			"category": "Engineering",
			"exams": [
				{"name": "JEE Main", "fullForm": "Joint Entrance Examination", "purpose": "Engineering Entrance Exam"},
				{"name": "BITSAT", "purpose": "Admission to BITS campuses"}
			]
		},
		{
			"category": "Medical",
			"exams": [{"name": "NEET UG", "purpose": "Medical entrance exam"}]
		}
	],
	"examLevels": {
		"After 12th": [{"name": "JEE Main", "purpose": "Engineering Entrance Exam"}]
	},
	"preparationResources": {
		"JEE Main": ["NCERT textbooks", {"name": "NTA Abhyas", "type": "app"}]
	}
}`

// memFS returns a filesystem holding the given files under /data.
func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/data", 0o755))
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, "/data/"+name, []byte(body), 0o644))
	}
	return fs
}

func allFiles() map[string]string {
	return map[string]string{
		"career.json":  careerJSON,
		"streams.json": streamsJSON,
		"exams.json":   examsJSON,
	}
}
