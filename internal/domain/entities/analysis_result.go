package entities

import "sort"

// AnalysisResult is the outcome of one analysis run.
// Used and Unused always partition the filtered declared set.
type AnalysisResult struct {
	Unused []string `json:"unused" yaml:"unused"`
	Used   []string `json:"used"   yaml:"used"`
	Total  int      `json:"total"  yaml:"total"`
}

// NewAnalysisResult splits the declared names into used and unused ones.
// Both lists come back sorted and without duplicates, regardless of input order.
func NewAnalysisResult(declared []string, used map[string]struct{}) AnalysisResult {
	unique := make(map[string]struct{}, len(declared))
	for _, name := range declared {
		unique[name] = struct{}{}
	}

	result := AnalysisResult{
		Unused: make([]string, 0),
		Used:   make([]string, 0),
		Total:  len(unique),
	}
	for name := range unique {
		if _, ok := used[name]; ok {
			result.Used = append(result.Used, name)
		} else {
			result.Unused = append(result.Unused, name)
		}
	}
	sort.Strings(result.Used)
	sort.Strings(result.Unused)

	return result
}

// HasUnused reports whether at least one declared dependency is never referenced.
func (r AnalysisResult) HasUnused() bool {
	return len(r.Unused) > 0
}

// AnalysisReport wraps a result with statistics about the scan that produced it.
type AnalysisReport struct {
	Result       AnalysisResult
	FilesScanned int
	BytesScanned int64
	SkippedDirs  []string
}
