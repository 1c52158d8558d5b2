package report

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	scores := []Score{
		{Kind: "bottle", Method: "r_b", Value: 0.5},
		{Kind: "bottle", Method: "r_b", Value: 0.7},
		{Kind: "bottle", Method: "r_b", Value: 0.9},
	}

	summaries := Summarize(scores)
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}

	s := summaries[0]
	if s.Kind != "bottle" || s.Method != "r_b" {
		t.Errorf("group: got %s/%s", s.Kind, s.Method)
	}
	if s.Count != 3 || s.Failed != 0 {
		t.Errorf("counts: got count=%d failed=%d", s.Count, s.Failed)
	}
	if math.Abs(s.Mean-0.7) > 1e-9 {
		t.Errorf("Mean: got %v, want 0.7", s.Mean)
	}
	if math.Abs(s.StdDev-0.2) > 1e-9 {
		t.Errorf("StdDev: got %v, want 0.2", s.StdDev)
	}
	if s.Min != 0.5 || s.Max != 0.9 {
		t.Errorf("range: got [%v, %v], want [0.5, 0.9]", s.Min, s.Max)
	}
}

func TestSummarize_FailedScores(t *testing.T) {
	scores := []Score{
		{Kind: "bottle", Method: "r_b", Value: 0.8},
		{Kind: "bottle", Method: "r_b", Err: "no foreground region in mask"},
		{Kind: "bottle", Method: "r_b", Value: 0.6},
	}

	summaries := Summarize(scores)
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}

	s := summaries[0]
	if s.Count != 2 || s.Failed != 1 {
		t.Errorf("counts: got count=%d failed=%d, want 2/1", s.Count, s.Failed)
	}
	if math.Abs(s.Mean-0.7) > 1e-9 {
		t.Errorf("Mean: got %v, want 0.7 (failed scores excluded)", s.Mean)
	}
}

func TestSummarize_SingleValue(t *testing.T) {
	summaries := Summarize([]Score{{Kind: "apple", Method: "r_m", Value: 0.4}})
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}

	s := summaries[0]
	if s.StdDev != 0 {
		t.Errorf("StdDev of a single value: got %v, want 0", s.StdDev)
	}
	if s.Mean != 0.4 || s.Min != 0.4 || s.Max != 0.4 {
		t.Errorf("stats: got mean=%v min=%v max=%v", s.Mean, s.Min, s.Max)
	}
}

func TestSummarize_AllFailed(t *testing.T) {
	summaries := Summarize([]Score{
		{Kind: "apple", Method: "r_b", Err: "boom"},
		{Kind: "apple", Method: "r_b", Err: "boom"},
	})
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}

	s := summaries[0]
	if s.Count != 0 || s.Failed != 2 {
		t.Errorf("counts: got count=%d failed=%d, want 0/2", s.Count, s.Failed)
	}
	if s.Mean != 0 || s.StdDev != 0 {
		t.Errorf("stats of empty group: got mean=%v stddev=%v", s.Mean, s.StdDev)
	}
}

func TestSummarize_GroupOrder(t *testing.T) {
	scores := []Score{
		{Kind: "bottle", Method: "r_b", Value: 0.5},
		{Kind: "bottle", Method: "r_d", Value: 0.5},
		{Kind: "apple", Method: "r_b", Value: 0.5},
		{Kind: "bottle", Method: "r_b", Value: 0.6},
	}

	summaries := Summarize(scores)
	want := []struct{ kind, method string }{
		{"bottle", "r_b"},
		{"bottle", "r_d"},
		{"apple", "r_b"},
	}
	if len(summaries) != len(want) {
		t.Fatalf("got %d summaries, want %d", len(summaries), len(want))
	}
	for i, w := range want {
		if summaries[i].Kind != w.kind || summaries[i].Method != w.method {
			t.Errorf("group %d: got %s/%s, want %s/%s",
				i, summaries[i].Kind, summaries[i].Method, w.kind, w.method)
		}
	}
}

func TestSummarize_Empty(t *testing.T) {
	if got := Summarize(nil); len(got) != 0 {
		t.Errorf("got %d summaries, want 0", len(got))
	}
}
