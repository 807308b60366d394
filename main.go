package main

import "media-scraper/cmd"

func main() {
	cmd.Execute()
}
