package ver

import "fmt"

// Filled in at link time.
var (
	// Git commit
	Git string
	// Compile info. of the go toolchain
	Compile string
	// Date of build
	Date string
)

// Version .
func Version() string {
	return fmt.Sprintf(`Git: %s
Compile: %s
Built: %s`, Git, Compile, Date)
}
