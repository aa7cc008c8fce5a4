package main

import "github.com/pfrederiksen/picks-scraper/internal/cli"

func main() {
	cli.Execute()
}
