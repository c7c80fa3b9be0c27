package main

import "github.com/tayloree/voicecart/cmd"

func main() {
	cmd.Execute()
}
