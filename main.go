package main

import "github.com/raydent/raydent_backend/cmd"

func main() {
	cmd.Execute()
}
