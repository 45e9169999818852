package main

import "github.com/cbbstats/team-registry/internal/cli"

func main() {
	cli.Execute()
}
