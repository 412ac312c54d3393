package main

import "github.com/graziososalvare/shelterboard/internal/cli"

func main() {
	cli.Execute()
}
