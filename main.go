package main

import "github.com/gnames/taxodb/cmd"

func main() {
	cmd.Execute()
}
