package main

import "github.com/keerthivasan18-r/ExpenseTracker/cmd"

func main() {
	cmd.Execute()
}
