/*
File    : mlang/eval/os_exit.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import "os"

// osExit is os.Exit behind a variable so tests can stub it out; calling
// the real os.Exit from a test would kill the test binary itself.
var osExit = os.Exit
