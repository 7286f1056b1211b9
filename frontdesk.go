package main

import (
	"github.com/frontdesk-org/frontdesk/api"
)

func main() {
	api.MainLoop()
}
