package main

import "github.com/naka-gawa/github-stats-card/cmd"

func main() {
	cmd.Execute()
}
