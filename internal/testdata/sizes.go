package testdata

type Size struct {
	Name string
	N    int
}

var Sizes []Size = []Size{
	{"1B", 1},
	{"64B", 64},
	{"167B", 167},
	{"168B", 168},
	{"8KiB", 8 * 1024},
	{"64KiB", 64 * 1024},
	{"1MiB", 1024 * 1024},
}
