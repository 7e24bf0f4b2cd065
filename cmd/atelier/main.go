// Command atelier is the backend for a personal content site.
package main

import "github.com/mesh-intelligence/atelier/internal/cli"

func main() {
	cli.Execute()
}
