package testcases

import "strings"

var wideCases = []TestCase{
	{
		// counts above 9 widen the grid cells
		Name:   "counts",
		Input:  strings.Repeat("0,0 -> 2,0\n", 10) + "1,0 -> 1,1",
		Points: 4,
		Danger: 3,
	},
}
