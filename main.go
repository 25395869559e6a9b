package main

import "github.com/wcfm-radio/wcfm/cmd"

func main() {
	cmd.Execute()
}
