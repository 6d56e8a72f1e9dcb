package main

import "tiengow-preview/cmd"

func main() {
	cmd.Execute()
}
