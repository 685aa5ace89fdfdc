package main

import (
	"agri-market-watch/internal/cli"
)

func main() {
	cli.Execute()
}
