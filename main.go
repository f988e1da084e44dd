package main

import (
	"os"

	"github.com/appsettings/appsettings/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
