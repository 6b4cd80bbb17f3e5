// Command raillock runs the interactive railway deadlock simulator.
package main

import "github.com/veletrack/raillock/internal/cli"

func main() {
	cli.Execute()
}
