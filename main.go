package main

import "github.com/notargets/coastmorph/cmd"

func main() {
	cmd.Execute()
}
