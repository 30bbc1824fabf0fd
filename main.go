package main

import "github.com/yuzhenhan994520-spec/element-crawler/pkg/cli"

func main() {
	cli.Execute()
}
