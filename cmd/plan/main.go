package main

import "github.com/jhoicas/semillero-api/cmd/plan/commands"

func main() {
	commands.Execute()
}
