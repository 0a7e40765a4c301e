package main

import "github.com/inovacc/clientrec/cmd"

func main() {
	cmd.Execute()
}
