package main

import "github.com/emrgen/habitat/cmd"

func main() {
	cmd.Execute()
}
