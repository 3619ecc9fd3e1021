package content

import "testing"

func TestEngagementLevelBuckets(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{95, "Very High"},
		{90, "Very High"},
		{89, "High"},
		{75, "High"},
		{74, "Medium"},
		{50, "Medium"},
		{49, "Low"},
		{0, "Low"},
	}
	for _, tt := range tests {
		if got := engagementLevel(tt.score); got != tt.want {
			t.Errorf("engagementLevel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestSEORankingBuckets(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{92, "Excellent"},
		{78, "Good"},
		{60, "Fair"},
		{10, "Poor"},
	}
	for _, tt := range tests {
		if got := seoRanking(tt.score); got != tt.want {
			t.Errorf("seoRanking(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestComputeQualityScore(t *testing.T) {
	qs := ComputeQualityScore(&GeneratedContent{})
	if qs.SEOScore != 82 || qs.ViralityScore != 87 || qs.ReadabilityLevel != "High" {
		t.Errorf("quality score = %+v", qs)
	}
	if len(qs.Improvements) != 4 {
		t.Errorf("improvements: %d, want 4", len(qs.Improvements))
	}
}

func TestComputeAnalytics(t *testing.T) {
	a := ComputeAnalytics(testContext())

	if len(a.EstimatedReach) != 3 {
		t.Fatalf("reach entries: %d", len(a.EstimatedReach))
	}
	for _, r := range a.EstimatedReach {
		if r.Min < 0 || r.Min > r.Max {
			t.Errorf("%s: bad reach band %d-%d", r.Platform, r.Min, r.Max)
		}
	}
	if a.EngagementPotential.Level != "High" {
		t.Errorf("engagement level = %q", a.EngagementPotential.Level)
	}
	if a.SEOPotential.Ranking != "Good" {
		t.Errorf("seo ranking = %q", a.SEOPotential.Ranking)
	}
	if len(a.BestPostingTimes) != 3 {
		t.Errorf("posting time platforms: %d", len(a.BestPostingTimes))
	}
}
