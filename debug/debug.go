package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Build bool
	Print bool
}

var d *debug

func init() {
	d = &debug{}
	d.Build = boolEnv("YAMPRINT_DEBUG_BUILD")
	d.Print = boolEnv("YAMPRINT_DEBUG_PRINT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Build() bool {
	return d.Build
}

func Print() bool {
	return d.Print
}
