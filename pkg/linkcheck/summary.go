package linkcheck

import "github.com/samber/lo"

// CategoryCount is the number of URLs and distinct domains in one category.
type CategoryCount struct {
	Label   string
	URLs    int
	Domains int
}

// Summary aggregates the results of a run.
type Summary struct {
	Total      int
	Succeeded  int
	Failed     int
	Categories []CategoryCount
	Failures   []Result
}

// SuccessRate returns the percentage of URLs that passed, or 0 for an empty run.
func (s Summary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Succeeded) / float64(s.Total) * 100
}

// FailureRate returns the percentage of URLs that failed.
func (s Summary) FailureRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return 100 - s.SuccessRate()
}

// Passed reports whether every URL succeeded.
func (s Summary) Passed() bool {
	return s.Failed == 0
}

// Summarize aggregates results. Categories are listed in order of first
// appearance.
func Summarize(results []Result) Summary {
	failures := lo.Filter(results, func(result Result, _ int) bool {
		return result.Failed()
	})

	summary := Summary{
		Total:     len(results),
		Failed:    len(failures),
		Succeeded: len(results) - len(failures),
		Failures:  failures,
	}

	var labels []string
	byLabel := make(map[string][]Result)
	for _, result := range results {
		if _, seen := byLabel[result.Category]; !seen {
			labels = append(labels, result.Category)
		}
		byLabel[result.Category] = append(byLabel[result.Category], result)
	}

	for _, label := range labels {
		members := byLabel[label]
		domains := lo.Uniq(lo.FilterMap(members, func(result Result, _ int) (string, bool) {
			return result.Domain, result.Domain != ""
		}))
		summary.Categories = append(summary.Categories, CategoryCount{
			Label:   label,
			URLs:    len(members),
			Domains: len(domains),
		})
	}

	return summary
}
