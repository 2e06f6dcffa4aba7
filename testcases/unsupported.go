package testcases

var unsupportedCases = []TestCase{
	{
		// the first segment is neither axis-aligned nor at 45°
		Name:   "skew",
		Input:  lines("1,4 -> 7,1", "0,0 -> 2,0"),
		Points: 3,
		Danger: 0,
	},
}
