package content

// Scoring and analytics. These are illustrative fixed figures, not a real
// model; only the level labels are derived, via fixed score thresholds.

// engagementLevel buckets a 0-100 engagement score.
func engagementLevel(score int) string {
	switch {
	case score >= 90:
		return "Very High"
	case score >= 75:
		return "High"
	case score >= 50:
		return "Medium"
	default:
		return "Low"
	}
}

// seoRanking buckets a 0-100 SEO score.
func seoRanking(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 50:
		return "Fair"
	default:
		return "Poor"
	}
}

// ComputeQualityScore attaches the fixed quality figures to a finished run.
func ComputeQualityScore(gc *GeneratedContent) *ContentQualityScore {
	return &ContentQualityScore{
		SEOScore:         82,
		ViralityScore:    87,
		ReadabilityLevel: "High",
		Improvements: []string{
			"Add more specific numbers and data points",
			"Strengthen the call-to-action in blog conclusion",
			"Include more emotional hooks in social posts",
			"Add relevant hashtags for better discoverability",
		},
	}
}

// ComputeAnalytics produces the fixed per-platform reach and timing figures.
func ComputeAnalytics(vc VideoContext) *ContentAnalytics {
	const (
		engagementScore = 85
		seoScore        = 78
	)
	return &ContentAnalytics{
		EstimatedReach: []ReachEstimate{
			{Min: 10000, Max: 50000, Platform: "Instagram"},
			{Min: 5000, Max: 25000, Platform: "LinkedIn"},
			{Min: 8000, Max: 40000, Platform: "Twitter"},
		},
		EngagementPotential: PotentialScore{
			Score: engagementScore,
			Level: engagementLevel(engagementScore),
		},
		SEOPotential: SEOScore{
			Score:   seoScore,
			Ranking: seoRanking(seoScore),
		},
		BestPostingTimes: []PostingTimes{
			{Platform: "Instagram", Times: []string{"9:00 AM", "6:00 PM", "8:30 PM"}},
			{Platform: "LinkedIn", Times: []string{"8:00 AM", "12:00 PM", "5:00 PM"}},
			{Platform: "Twitter", Times: []string{"8:30 AM", "1:00 PM", "7:00 PM"}},
		},
	}
}
