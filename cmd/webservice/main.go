package main

import "hello-web/internal/cli"

func main() {
	cli.Execute(cli.NewWebServiceCommand())
}
