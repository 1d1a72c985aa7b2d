// Command recipebook is a local-first recipe manager.
package main

import "github.com/mesh-intelligence/recipebook/internal/cli"

func main() {
	cli.Execute()
}
