package main

import "github.com/martinwickman/zshprompt/internal/cli"

func main() {
	cli.Execute(cli.NewRootCommand(cli.OSDeps()))
}
