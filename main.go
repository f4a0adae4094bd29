package main

import "github.com/OpenSourcePT/PMCurve/cmd"

func main() {
	cmd.Execute()
}
