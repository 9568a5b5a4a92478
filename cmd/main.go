package main

import (
	"github.com/aays-store/backend/internal/app"
	"github.com/aays-store/backend/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
