package report

import (
	"github.com/lox/camelcards/internal/fileutil"
	"github.com/lox/camelcards/internal/ranker"
)

// WriteSummary replaces path with the result summary. Readers never observe a
// partially written file.
func WriteSummary(path string, results []*ranker.Result) error {
	return fileutil.WriteFileAtomic(path, Summary(results), 0644)
}
