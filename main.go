package main

import "clipscribe/cmd"

func main() {
	cmd.Execute()
}
