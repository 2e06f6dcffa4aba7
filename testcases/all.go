package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference grid filenames.
var All = map[string][]TestCase{
	"sample":      sampleCases,
	"cross":       crossCases,
	"reverse":     reverseCases,
	"unsupported": unsupportedCases,
	"wide":        wideCases,
}
