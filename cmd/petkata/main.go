package main

import "github.com/hasbyte1/go-collections-kata/internal/cli"

func main() {
	cli.Execute()
}
