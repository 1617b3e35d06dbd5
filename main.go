package main

import "github.com/rskv-p/radix/cmd"

func main() {
	cmd.Execute()
}
