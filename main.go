package main

import "github.com/junaidrashid-git/armory-api/cli"

func main() {
	cli.Execute()
}
