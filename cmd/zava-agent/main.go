package main

import "github.com/zava-ai/zava/cmd/zava-agent/cli"

func main() {
	cli.Execute()
}
