package cmd

import (
	"fmt"
	"io"
	"strings"

	"pathfinder-be/internal/dto"
	"pathfinder-be/pkg/datastore"
	"pathfinder-be/pkg/search"

	"github.com/fatih/color"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

// formatSearch renders results one per line:
//
//	3 results for "eng"
//	  [stream] Science Stream  Engineering, Medical, Research careers
//	  [exam]   JEE Main (Engineering)  Engineering Entrance Exam
func formatSearch(w io.Writer, res *dto.SearchResponse) {
	if len(res.Results) == 0 {
		fmt.Fprintf(w, "%s\n", yellow(fmt.Sprintf("No results for %q", res.Query)))
		return
	}

	header := fmt.Sprintf("%d results for %q", res.Total, res.Query)
	if res.Count < res.Total {
		header = fmt.Sprintf("%d of %d results for %q", res.Count, res.Total, res.Query)
	}
	fmt.Fprintln(w, bold(header))

	for _, r := range res.Results {
		tag := fmt.Sprintf("%-8s", "["+string(r.Type)+"]")
		name := r.Name
		if r.Type == search.TypeExam && r.Category != "" {
			name = fmt.Sprintf("%s (%s)", r.Name, r.Category)
		}
		fmt.Fprintf(w, "  %s %s  %s\n", cyan(tag), bold(name), gray(r.Description))
	}
}

func formatRecommendations(w io.Writer, rec *datastore.Recommendations) {
	fmt.Fprintf(w, "%s  %s\n", bold(rec.Stream.Name), gray(rec.Stream.Description))
	if len(rec.Stream.Subjects) > 0 {
		fmt.Fprintf(w, "Subjects: %s\n", strings.Join(rec.Stream.Subjects, ", "))
	}

	if len(rec.CareerPaths) > 0 {
		fmt.Fprintln(w, cyan("Career paths"))
		for _, p := range rec.CareerPaths {
			names := make([]string, 0, len(p.Options))
			for _, o := range p.Options {
				names = append(names, o.Name)
			}
			fmt.Fprintf(w, "  %s: %s\n", p.Stage, strings.Join(names, ", "))
		}
	}

	if len(rec.JobOpportunities) > 0 {
		fmt.Fprintln(w, cyan("Job opportunities"))
		for _, j := range rec.JobOpportunities {
			line := fmt.Sprintf("  %s: %s", j.Field, strings.Join(j.Jobs, ", "))
			if j.SalaryRange != "" {
				line += " " + green(j.SalaryRange)
			}
			fmt.Fprintln(w, line)
		}
	}

	if len(rec.GovernmentExams) > 0 {
		fmt.Fprintln(w, cyan("Government exams"))
		for _, e := range rec.GovernmentExams {
			fmt.Fprintf(w, "  %s\n", e.Name)
		}
	}

	if len(rec.ProfessionalCourses) > 0 {
		fmt.Fprintln(w, cyan("Professional courses"))
		for _, c := range rec.ProfessionalCourses {
			fmt.Fprintf(w, "  %s\n", c.Name)
		}
	}
}

func formatStats(w io.Writer, stats datastore.QuickStats, warnings []string) {
	fmt.Fprintf(w, "%s %d\n", bold("Streams:"), stats.TotalStreams)
	fmt.Fprintf(w, "%s %d\n", bold("Exams:  "), stats.TotalExams)
	fmt.Fprintf(w, "%s %d\n", bold("Careers:"), stats.TotalCareers)
	for _, warn := range warnings {
		fmt.Fprintf(w, "%s %s\n", yellow("warning:"), warn)
	}
}

func formatDegraded(w io.Writer, degraded []datastore.DatasetName) {
	for _, name := range degraded {
		fmt.Fprintf(w, "%s %s unavailable, using empty defaults\n", yellow("warning:"), name.File())
	}
}
