package testcases

var reverseCases = []TestCase{
	{
		Name:   "overlap",
		Input:  lines("0,0 -> 5,0", "5,0 -> 0,0"),
		Points: 6,
		Danger: 6,
	},
	{
		Name:   "point",
		Input:  lines("2,2 -> 2,2", "0,2 -> 4,2"),
		Points: 5,
		Danger: 1,
	},
}
