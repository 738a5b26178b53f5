package main

import "github.com/mvp-joe/moonbit-leetcode/internal/cli"

func main() {
	cli.Execute()
}
