package main

import "github.com/ngmaloney/strait-current/internal/cli"

func main() {
	cli.Execute()
}
