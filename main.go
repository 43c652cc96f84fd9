package main

import "fib-service/cmd"

func main() {
	cmd.Execute()
}
