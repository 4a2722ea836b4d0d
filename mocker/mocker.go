// Package mocker provides useful tools that can be used in unit tests
package mocker

// Tests quite often need to replace a package-level function or state
// variable with a stub - here the benchmark tests swap the estimator
// out to pin the aggregation arithmetic. ReplaceItem preserves and
// restores an item (function or variable).
//
// This function should be used like
//
//	defer mocker.ReplaceItem(&orgVal, newVal)()
//
// - note extra brackets.
func ReplaceItem[T any](orgVal *T, newVal T) func() {
	saveVal := *orgVal
	*orgVal = newVal
	return func() { *orgVal = saveVal }
}
