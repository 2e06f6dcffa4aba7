package testcases

// sample is the ten-segment reference input.
var sample = lines(
	"0,9 -> 5,9",
	"8,0 -> 0,8",
	"9,4 -> 3,4",
	"2,2 -> 2,1",
	"7,0 -> 7,4",
	"6,4 -> 2,0",
	"0,9 -> 2,9",
	"3,4 -> 1,4",
	"0,0 -> 8,8",
	"5,5 -> 8,2",
)

var sampleCases = []TestCase{
	{
		Name:   "full",
		Input:  sample,
		Points: 39,
		Danger: 12,
	},
	{
		Name:     "axis",
		Input:    sample,
		AxisOnly: true,
		Points:   21,
		Danger:   5,
	},
}
