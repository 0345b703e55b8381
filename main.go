package main

import "post-receptor/cmd"

func main() {
	cmd.Execute()
}
