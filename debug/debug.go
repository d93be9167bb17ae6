// Package debug gates trace output on XMLDIFFS_DEBUG_* environment
// variables.  Nothing in the core logs unless asked to.
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Writer receives all trace output.
var Writer io.Writer = os.Stderr

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return boolEnv("XMLDIFFS_DEBUG_PARSE")
}
func Canon() bool {
	return boolEnv("XMLDIFFS_DEBUG_CANON")
}
func Diff() bool {
	return boolEnv("XMLDIFFS_DEBUG_DIFF")
}

func Logf(format string, args ...any) {
	fmt.Fprintf(Writer, format, args...)
}

func JSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
