package main

import "github.com/leopoldovcfonseca/ptashelf/internal/cli"

func main() {
	cli.Execute()
}
