package flatten_test

// golden is one shape applied to a fixture with both expected orders.
type golden struct {
	shape []int
	lex   []int
	colex []int
}

var x2 = [][]int{
	{1, 2, 3, 4},
	{5, 6, 7, 8},
	{9, 10, 11, 12},
	{13, 14, 15, 16},
}

var golden2 = []golden{
	{[]int{0, 0}, []int{}, []int{}},
	{[]int{0, 1}, []int{}, []int{}},
	{[]int{1, 0}, []int{}, []int{}},
	{[]int{1, 1}, []int{1}, []int{1}},
	{[]int{1, 2}, []int{1, 2}, []int{1, 2}},
	{[]int{2, 1}, []int{1, 5}, []int{1, 5}},
	{[]int{2, 2}, []int{1, 2, 5, 6}, []int{1, 5, 2, 6}},
	{[]int{2, 3}, []int{1, 2, 3, 5, 6, 7}, []int{1, 5, 2, 6, 3, 7}},
	{[]int{3, 3}, []int{1, 2, 3, 5, 6, 7, 9, 10, 11}, []int{1, 5, 9, 2, 6, 10, 3, 7, 11}},
	{[]int{4, 1}, []int{1, 5, 9, 13}, []int{1, 5, 9, 13}},
	{[]int{4, 2}, []int{1, 2, 5, 6, 9, 10, 13, 14}, []int{1, 5, 9, 13, 2, 6, 10, 14}},
	{[]int{4, 4}, seq(16), []int{1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 16}},
}

var x3 = [][][]int{
	{{1, 2}, {3, 4}},
	{{5, 6}, {7, 8}},
	{{9, 10}, {11, 12}},
	{{13, 14}, {15, 16}},
}

var golden3 = []golden{
	{[]int{0, 0, 0}, []int{}, []int{}},
	{[]int{0, 0, 1}, []int{}, []int{}},
	{[]int{1, 0, 0}, []int{}, []int{}},
	{[]int{1, 1, 1}, []int{1}, []int{1}},
	{[]int{1, 1, 2}, []int{1, 2}, []int{1, 2}},
	{[]int{2, 1, 1}, []int{1, 5}, []int{1, 5}},
	{[]int{2, 1, 2}, []int{1, 2, 5, 6}, []int{1, 5, 2, 6}},
	{[]int{3, 2, 2}, seq(12), []int{1, 5, 9, 3, 7, 11, 2, 6, 10, 4, 8, 12}},
	{[]int{4, 1, 1}, []int{1, 5, 9, 13}, []int{1, 5, 9, 13}},
	{[]int{4, 1, 2}, []int{1, 2, 5, 6, 9, 10, 13, 14}, []int{1, 5, 9, 13, 2, 6, 10, 14}},
	{[]int{4, 2, 2}, seq(16), []int{1, 5, 9, 13, 3, 7, 11, 15, 2, 6, 10, 14, 4, 8, 12, 16}},
}

var x4 = [][][][]int{
	{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	},
	{
		{{9, 10}, {11, 12}},
		{{13, 14}, {15, 16}},
	},
}

var golden4 = []golden{
	{[]int{0, 0, 0, 0}, []int{}, []int{}},
	{[]int{0, 0, 1, 0}, []int{}, []int{}},
	{[]int{1, 0, 0, 1}, []int{}, []int{}},
	{[]int{1, 1, 1, 1}, []int{1}, []int{1}},
	{[]int{1, 1, 1, 2}, []int{1, 2}, []int{1, 2}},
	{[]int{2, 1, 1, 1}, []int{1, 9}, []int{1, 9}},
	{[]int{1, 2, 1, 2}, []int{1, 2, 5, 6}, []int{1, 5, 2, 6}},
	{[]int{1, 2, 2, 2}, seq(8), []int{1, 5, 3, 7, 2, 6, 4, 8}},
	{[]int{2, 2, 1, 1}, []int{1, 5, 9, 13}, []int{1, 9, 5, 13}},
	{[]int{2, 2, 1, 2}, []int{1, 2, 5, 6, 9, 10, 13, 14}, []int{1, 9, 5, 13, 2, 10, 6, 14}},
	{[]int{2, 2, 2, 2}, seq(16), []int{1, 9, 5, 13, 3, 11, 7, 15, 2, 10, 6, 14, 4, 12, 8, 16}},
}

var x5 = [][][][][]int{
	{
		{{{1, 2}, {3, 4}}},
		{{{5, 6}, {7, 8}}},
	},
	{
		{{{9, 10}, {11, 12}}},
		{{{13, 14}, {15, 16}}},
	},
}

var golden5 = []golden{
	{[]int{0, 0, 0, 0, 0}, []int{}, []int{}},
	{[]int{0, 0, 1, 0, 0}, []int{}, []int{}},
	{[]int{1, 0, 0, 1, 0}, []int{}, []int{}},
	{[]int{1, 1, 1, 1, 1}, []int{1}, []int{1}},
	{[]int{1, 1, 1, 1, 2}, []int{1, 2}, []int{1, 2}},
	{[]int{2, 1, 1, 1, 1}, []int{1, 9}, []int{1, 9}},
	{[]int{1, 2, 1, 1, 2}, []int{1, 2, 5, 6}, []int{1, 5, 2, 6}},
	{[]int{1, 2, 1, 2, 2}, seq(8), []int{1, 5, 3, 7, 2, 6, 4, 8}},
	{[]int{2, 2, 1, 1, 1}, []int{1, 5, 9, 13}, []int{1, 9, 5, 13}},
	{[]int{2, 2, 1, 1, 2}, []int{1, 2, 5, 6, 9, 10, 13, 14}, []int{1, 9, 5, 13, 2, 10, 6, 14}},
	{[]int{2, 2, 1, 2, 2}, seq(16), []int{1, 9, 5, 13, 3, 11, 7, 15, 2, 10, 6, 14, 4, 12, 8, 16}},
}

// seq returns 1..n.
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}
