package main

import (
	"aa-greeting/cmd"
)

func main() {
	cmd.Execute()
}
