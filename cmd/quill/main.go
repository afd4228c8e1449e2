package main

import "github.com/inkforge-labs/quill-cli/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
