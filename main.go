package main

import (
	"sakelien.dev/scenario-backend/cmd/app"
)

func main() {
	app.Run()
}
