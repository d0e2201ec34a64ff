package score

// Badge maps an externally computed 0-100 match score to its display
// band. Nil means the matcher has not scored the application; a literal
// zero is still a scored (fair) result.
func Badge(score *float64) string {
	if score == nil {
		return "Not Scored"
	}
	if *score >= 80 {
		return "Excellent Match"
	}
	if *score >= 60 {
		return "Good Match"
	}
	return "Fair Match"
}
