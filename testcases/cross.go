package testcases

var crossCases = []TestCase{
	{
		// 6 points vertically + 6 points horizontally - 1 common point
		Name:   "plus",
		Input:  lines("3,0 -> 3,5", "0,3 -> 5,3"),
		Points: 11,
		Danger: 1,
	},
	{
		Name:   "x",
		Input:  lines("0,0 -> 4,4", "0,4 -> 4,0"),
		Points: 9,
		Danger: 1,
	},
	{
		// the diagonals cross at (0.5, 0.5), which is not a lattice point
		Name:   "between",
		Input:  lines("0,1 -> 1,0", "0,0 -> 1,1"),
		Points: 4,
		Danger: 0,
	},
}
