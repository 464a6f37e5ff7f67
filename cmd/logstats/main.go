package main

import "gamelog-tracker/internal/cli"

func main() {
	cli.Execute()
}
