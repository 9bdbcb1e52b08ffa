package main

import "kushfilms/cmd/kushctl/command"

func main() {
	command.Execute()
}
