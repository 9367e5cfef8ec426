package main

import (
	"fmt"
	"os"
)

func main() {
	app := newAppContext()
	err := newRootCmd(app).Execute()
	if closeErr := app.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
