// Command ollamachat is a minimal terminal chat front-end.
package main

import "github.com/diogo/ollamachat/internal/commands"

func main() {
	commands.Execute()
}
