package skillgap

import (
	"reflect"
	"testing"
)

func TestGap_Basic(t *testing.T) {
	res := Gap([]string{"python", "sql"}, "Python, SQL, Excel")

	if !reflect.DeepEqual(res.Has, []string{"python", "sql"}) {
		t.Errorf("has = %v", res.Has)
	}
	if !reflect.DeepEqual(res.Needs, []string{"excel"}) {
		t.Errorf("needs = %v", res.Needs)
	}
	if res.MatchPercent != 66.7 {
		t.Errorf("match percent = %v, want 66.7", res.MatchPercent)
	}
	if res.TotalRequired != 3 {
		t.Errorf("total required = %d, want 3", res.TotalRequired)
	}
}

func TestGap_EmptyRequired(t *testing.T) {
	res := Gap([]string{"python", "sql"}, "")

	if res.MatchPercent != 0 {
		t.Errorf("match percent = %v, want 0", res.MatchPercent)
	}
	if len(res.Needs) != 0 {
		t.Errorf("needs = %v, want empty", res.Needs)
	}
	if res.TotalRequired != 0 {
		t.Errorf("total required = %d, want 0", res.TotalRequired)
	}
}

func TestGap_CaseAndWhitespaceInsensitive(t *testing.T) {
	res := Gap([]string{"  PYTHON ", "Sql"}, " python ,SQL ")

	if res.MatchPercent != 100.0 {
		t.Errorf("match percent = %v, want 100.0", res.MatchPercent)
	}
	if len(res.Needs) != 0 {
		t.Errorf("needs = %v, want empty", res.Needs)
	}
}

func TestGap_DuplicatesCollapse(t *testing.T) {
	res := Gap([]string{"go"}, "Go, go, GO, Docker, docker")

	if res.TotalRequired != 2 {
		t.Errorf("total required = %d, want 2", res.TotalRequired)
	}
	if res.MatchPercent != 50.0 {
		t.Errorf("match percent = %v, want 50.0", res.MatchPercent)
	}
}

func TestGap_NoExactMatchMeansNoFuzzy(t *testing.T) {
	// "postgres" must not match "postgresql": exact comparison only.
	res := Gap([]string{"postgres"}, "postgresql")

	if len(res.Has) != 0 {
		t.Errorf("has = %v, want empty", res.Has)
	}
	if res.MatchPercent != 0 {
		t.Errorf("match percent = %v, want 0", res.MatchPercent)
	}
}

func TestGap_EmptyEntriesDropped(t *testing.T) {
	res := Gap(nil, "go, , ,docker,")

	if res.TotalRequired != 2 {
		t.Errorf("total required = %d, want 2", res.TotalRequired)
	}
}

func TestSuggestNext(t *testing.T) {
	next := SuggestNext([]string{"sql"}, "SQL, Tableau, Python, Statistics", 2)

	if len(next) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(next))
	}
	// Needs sorted: python, statistics, tableau.
	if next[0] != "python" || next[1] != "statistics" {
		t.Errorf("suggestions = %v", next)
	}
}

func TestBestMatches_RanksAndFilters(t *testing.T) {
	targets := []Target{
		{Ref: "job-a", Title: "Analyst", RequiredCSV: "SQL, Excel"},
		{Ref: "job-b", Title: "Engineer", RequiredCSV: "Go, Kubernetes, SQL"},
		{Ref: "job-c", Title: "Writer", RequiredCSV: "Copywriting"},
		{Ref: "job-d", Title: "No skills listed", RequiredCSV: ""},
	}

	matches := BestMatches([]string{"sql", "excel", "go"}, targets, 50, 10)

	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(matches), matches)
	}
	if matches[0].Target.Ref != "job-a" || matches[0].Result.MatchPercent != 100.0 {
		t.Errorf("best match = %+v", matches[0])
	}
	if matches[1].Target.Ref != "job-b" || matches[1].Result.MatchPercent != 66.7 {
		t.Errorf("second match = %+v", matches[1])
	}
}

func TestBestMatches_Limit(t *testing.T) {
	targets := []Target{
		{Ref: "a", RequiredCSV: "go"},
		{Ref: "b", RequiredCSV: "go"},
		{Ref: "c", RequiredCSV: "go"},
	}

	matches := BestMatches([]string{"go"}, targets, 0, 2)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	// Equal percentages tie-break by ref.
	if matches[0].Target.Ref != "a" || matches[1].Target.Ref != "b" {
		t.Errorf("matches = %v, %v", matches[0].Target.Ref, matches[1].Target.Ref)
	}
}

func TestBestMatches_EmptyTargets(t *testing.T) {
	if got := BestMatches([]string{"go"}, nil, 0, 5); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
