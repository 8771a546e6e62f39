package riasec

import (
	"reflect"
	"testing"
)

func TestClassify_DataScientist(t *testing.T) {
	res := Classify([]string{"Python", "SQL", "machine learning"}, "Data Scientist")

	if res.PrimaryType != "Investigative" {
		t.Errorf("primary type = %q, want Investigative", res.PrimaryType)
	}
	if res.Code[0] != 'I' {
		t.Errorf("code = %q, want first letter I", res.Code)
	}
	if res.Confidence <= 0.5 {
		t.Errorf("confidence = %f, want dominant (> 0.5)", res.Confidence)
	}
}

func TestClassify_Empty(t *testing.T) {
	res := Classify(nil, "")

	if res.Confidence != 0 {
		t.Errorf("confidence = %f, want 0", res.Confidence)
	}
	if res.Code != "ISE" {
		t.Errorf("code = %q, want tie-break default ISE", res.Code)
	}
	for _, typ := range AllTypes() {
		if res.Scores[typ] != 0 {
			t.Errorf("score[%s] = %f, want 0", typ, res.Scores[typ])
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	phrases := []string{"nursing", "patient care", "Excel", "teaching", "payroll"}

	first := Classify(phrases, "Registered Nurse")
	for i := 0; i < 10; i++ {
		again := Classify(phrases, "Registered Nurse")
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\nfirst: %+v\nagain: %+v", i, first, again)
		}
	}
}

func TestClassify_TitleBonus(t *testing.T) {
	// Same skills, with and without a title containing a strong indicator.
	without := Classify([]string{"communication"}, "")
	with := Classify([]string{"communication"}, "Sales Management")

	// "sales" and "management" are Enterprising strong indicators found in
	// the title; each earns the 2.0 bonus.
	if with.Scores[Enterprising] != without.Scores[Enterprising]+4.0 {
		t.Errorf("enterprising score = %f, want %f",
			with.Scores[Enterprising], without.Scores[Enterprising]+4.0)
	}
}

func TestClassify_TitleBonusOncePerIndicator(t *testing.T) {
	// The indicator appears twice in the title; the bonus applies once.
	once := Classify([]string{"sales"}, "Sales Lead")
	twice := Classify([]string{"sales"}, "Sales Lead, Sales")

	if once.Scores[Enterprising] != twice.Scores[Enterprising] {
		t.Errorf("repeated title occurrence changed score: %f vs %f",
			once.Scores[Enterprising], twice.Scores[Enterprising])
	}
}

func TestClassify_OverlappingIndicatorsBothScore(t *testing.T) {
	// "data analysis" contains the indicator phrases "data analysis",
	// "analysis", and "data"; all three score. This reinforcement is a
	// documented characteristic of substring matching.
	res := Classify([]string{"data analysis"}, "")

	want := TierStrong.Weight() + TierStrong.Weight() + TierKeyword.Weight()
	if res.Scores[Investigative] != want {
		t.Errorf("investigative score = %f, want %f", res.Scores[Investigative], want)
	}
}

func TestClassify_TieBreakOrder(t *testing.T) {
	// No matches at all: ranking is purely the canonical priority order.
	res := Classify([]string{"zzzz"}, "")
	if res.Code != "ISE" {
		t.Errorf("code = %q, want ISE", res.Code)
	}
}

func TestClassify_ConfidenceCapped(t *testing.T) {
	res := Classify([]string{"welding", "plumbing", "carpentry", "HVAC"}, "")
	if res.Confidence > 1.0 {
		t.Errorf("confidence = %f, want <= 1.0", res.Confidence)
	}
	if res.Code[0] != 'R' {
		t.Errorf("code = %q, want first letter R", res.Code)
	}
}

func TestRankTypes_ScoreThenPriority(t *testing.T) {
	scores := map[Type]float64{
		Realistic:     2,
		Investigative: 5,
		Artistic:      2,
		Social:        5,
		Enterprising:  0,
		Conventional:  1,
	}
	ranked := rankTypes(scores)

	// I and S tie at 5: I outranks S. R and A tie at 2: R outranks A.
	want := []Type{Investigative, Social, Realistic, Artistic, Conventional, Enterprising}
	if !reflect.DeepEqual(ranked, want) {
		t.Errorf("ranked = %v, want %v", ranked, want)
	}
}

func TestIndicators_SortedAndUnique(t *testing.T) {
	inds := Indicators()
	if len(inds) == 0 {
		t.Fatal("indicator table is empty")
	}
	for i := 1; i < len(inds); i++ {
		if inds[i-1].Phrase >= inds[i].Phrase {
			t.Fatalf("table not strictly sorted at %d: %q >= %q",
				i, inds[i-1].Phrase, inds[i].Phrase)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hands-On", "hands on"},
		{"UI/UX  Design", "ui ux design"},
		{"  Microsoft Office ", "microsoft office"},
		{"data_entry;filing", "data entry filing"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
