package main

import "github.com/3-lines-studio/flashlearn/internal/command"

func main() {
	command.Execute()
}
