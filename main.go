/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/nakachan-ing/taskflow-cli/cmd"

func main() {
	cmd.Execute()
}
