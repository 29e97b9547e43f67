package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"pathfinder-be/internal/dto"
	"pathfinder-be/internal/entity"
	"pathfinder-be/pkg/datastore"
	"pathfinder-be/pkg/search"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestFormatSearch(t *testing.T) {
	var buf bytes.Buffer
	formatSearch(&buf, &dto.SearchResponse{
		Query: "eng",
		Count: 2,
		Total: 3,
		Results: []search.Result{
			{Type: search.TypeStream, Name: "Science Stream", Description: "Engineering"},
			{Type: search.TypeExam, Name: "JEE Main", Description: "Entrance", Category: "Engineering"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, `2 of 3 results for "eng"`)
	assert.Contains(t, out, "[stream] Science Stream  Engineering")
	assert.Contains(t, out, "JEE Main (Engineering)  Entrance")
}

func TestFormatSearchEmpty(t *testing.T) {
	var buf bytes.Buffer
	formatSearch(&buf, &dto.SearchResponse{Query: "xyz"})
	assert.Equal(t, "No results for \"xyz\"\n", buf.String())
}

func TestFormatRecommendationsSkipsEmptySections(t *testing.T) {
	var buf bytes.Buffer
	formatRecommendations(&buf, &datastore.Recommendations{
		Stream:           entity.Stream{Name: "Commerce Stream", Description: "Business"},
		JobOpportunities: []entity.JobOpportunity{{Field: "Finance", Jobs: []string{"CA", "Analyst"}, SalaryRange: "₹4-20 LPA"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Finance: CA, Analyst ₹4-20 LPA")
	assert.NotContains(t, out, "Career paths")
	assert.NotContains(t, out, "Government exams")
}

func TestSearchCommandAgainstDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "career.json"),
		[]byte(`{"streams":[{"id":"science","name":"Science Stream","description":"Engineering careers"}]}`), 0o644))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"search", "--data", dir, "engineering"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Science Stream")
	assert.Contains(t, errOut.String(), "streams.json unavailable")
	assert.Contains(t, errOut.String(), "exams.json unavailable")
}
