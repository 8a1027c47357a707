package main

import "github.com/iksnae/cursor-chat-export/cmd"

func main() {
	cmd.Execute()
}
