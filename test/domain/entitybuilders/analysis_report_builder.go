//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/depcheck/internal/domain/entities"
)

// AnalysisReportBuilder helps create test analysis reports with a fluent interface.
type AnalysisReportBuilder struct {
	*testkit.BaseBuilder
	used         []string
	unused       []string
	filesScanned int
	bytesScanned int64
}

// NewAnalysisReportBuilder creates a new report builder with an empty result.
func NewAnalysisReportBuilder() *AnalysisReportBuilder {
	return &AnalysisReportBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		filesScanned: 1,
		bytesScanned: 128,
	}
}

// WithUsed adds referenced dependencies.
func (b *AnalysisReportBuilder) WithUsed(names ...string) *AnalysisReportBuilder {
	b.used = append(b.used, names...)
	return b
}

// WithUnused adds dependencies nothing references.
func (b *AnalysisReportBuilder) WithUnused(names ...string) *AnalysisReportBuilder {
	b.unused = append(b.unused, names...)
	return b
}

// WithFilesScanned sets the number of scanned files.
func (b *AnalysisReportBuilder) WithFilesScanned(files int) *AnalysisReportBuilder {
	b.filesScanned = files
	return b
}

// Build creates the report (satisfies testkit.Builder interface).
func (b *AnalysisReportBuilder) Build() interface{} {
	return b.BuildReport()
}

// BuildReport creates the report with a concrete return type.
func (b *AnalysisReportBuilder) BuildReport() *entities.AnalysisReport {
	declared := append(append([]string{}, b.used...), b.unused...)
	used := make(map[string]struct{}, len(b.used))
	for _, name := range b.used {
		used[name] = struct{}{}
	}
	return &entities.AnalysisReport{
		Result:       entities.NewAnalysisResult(declared, used),
		FilesScanned: b.filesScanned,
		BytesScanned: b.bytesScanned,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *AnalysisReportBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.used = nil
	b.unused = nil
	b.filesScanned = 1
	b.bytesScanned = 128
	return b
}

// Clone creates a deep copy of the AnalysisReportBuilder.
func (b *AnalysisReportBuilder) Clone() testkit.Builder {
	return &AnalysisReportBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		used:         append([]string{}, b.used...),
		unused:       append([]string{}, b.unused...),
		filesScanned: b.filesScanned,
		bytesScanned: b.bytesScanned,
	}
}
