// bmpfilter turns a 24-bit bitmap read from stdin into grayscale or black and white
package main

import (
	"errors"
	"os"

	"github.com/anas-shakeel/bmpfilter/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		exitCodeError := &cmd.ExitCodeError{}
		if errors.As(err, &exitCodeError) {
			os.Exit(exitCodeError.ExitCode())
		} else {
			os.Exit(int(cmd.ExitCodeArguments))
		}
	}
}
