package main

import "github.com/mpapenbr/f1-history-service-go/cmd"

func main() {
	cmd.Execute()
}
