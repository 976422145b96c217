package main

import "github.com/oshokin/gitversion/cmd/gitversion/cmd"

func main() {
	cmd.Execute()
}
