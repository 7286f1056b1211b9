package main

import (
	"github.com/frontdesk-org/frontdesk/cmd/frontdeskctl/command"
)

func main() {
	command.Execute()
}
