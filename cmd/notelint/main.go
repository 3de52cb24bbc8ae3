package main

import "notelint/internal/cli"

func main() {
	cli.Execute()
}
