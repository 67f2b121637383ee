package main

import "github.com/LavenderBridge/multidrill/cmd"

func main() {
	cmd.Execute()
}
