package main

import "github.com/0binna-oss/deep-work-tracker/cmd"

func main() {
	cmd.Execute()
}
