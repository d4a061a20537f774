package main

import "depextract/internal/cli"

func main() {
	cli.Execute()
}
