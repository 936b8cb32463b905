package main

import "github.com/shockphys/goshock/cmd"

func main() {
	cmd.Execute()
}
