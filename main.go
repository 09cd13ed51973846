/*
This is an example of application that will use the
library package to test things out
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/prisma/testbed"
)

func main() {
	configPath := "testbed.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	game, err := testbed.NewGame(configPath)
	if err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		_ = game.Shutdown()
	}()

	// run the demo
	if err := game.Run(); err != nil {
		panic(err)
	}
	_ = game.Shutdown()
}
