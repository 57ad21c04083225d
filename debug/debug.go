package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Match bool
	Merge bool
	Node  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("KEYPATH_DEBUG_PARSE")
	d.Match = boolEnv("KEYPATH_DEBUG_MATCH")
	d.Merge = boolEnv("KEYPATH_DEBUG_MERGE")
	d.Node = boolEnv("KEYPATH_DEBUG_NODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Match() bool {
	return d.Match
}
func Merge() bool {
	return d.Merge
}
func Node() bool {
	return d.Node
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
