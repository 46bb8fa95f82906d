package debug

import (
	"fmt"
	"os"
	"strconv"

	json "github.com/goccy/go-json"
)

type debug struct {
	Tokens bool
	Parse  bool
	Encode bool
	Diff   bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("JC_DEBUG_TOKENS")
	d.Parse = boolEnv("JC_DEBUG_PARSE")
	d.Encode = boolEnv("JC_DEBUG_ENCODE")
	d.Diff = boolEnv("JC_DEBUG_DIFF")
	d.Eval = boolEnv("JC_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Diff() bool {
	return d.Diff
}
func Eval() bool {
	return d.Eval
}

// Logf writes a formatted line to stderr.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	if len(format) == 0 || format[len(format)-1] != '\n' {
		os.Stderr.Write([]byte{'\n'})
	}
}

// LogAny writes v to stderr as JSON, falling back to %v.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	d = append(d, '\n')
	os.Stderr.Write(d)
}
