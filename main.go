package main

import (
	"context"
	"os"

	"github.com/GoPowerDNS-Admin/pdns-api/app"
)

func main() {
	if err := app.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
