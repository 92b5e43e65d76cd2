package main

import "seokit/cli"

func main() {
	cli.Execute()
}
