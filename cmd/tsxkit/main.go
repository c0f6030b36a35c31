package main

import "github.com/withgalaxy/tsxkit/pkg/cli"

func main() {
	cli.Execute()
}
