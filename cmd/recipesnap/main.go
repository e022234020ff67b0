package main

import "github.com/craftbase/recipesnap/pkg/cli"

func main() {
	cli.Execute()
}
