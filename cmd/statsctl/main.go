// Command statsctl inspects a running match-stats-service from the terminal.
package main

import "github.com/ovasylenko/match-stats-service/internal/cli"

func main() {
	cli.Execute()
}
