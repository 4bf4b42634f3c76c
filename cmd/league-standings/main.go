package main

import "github.com/mosheDeveloper/league-standings/internal/cli"

func main() {
	cli.Execute()
}
