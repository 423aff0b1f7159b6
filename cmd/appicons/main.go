package main

import (
	"github.com/SkyMack/appicons/internal/clibase"
	"github.com/SkyMack/appicons/internal/generator"
	log "github.com/sirupsen/logrus"
)

const (
	appName        = "appicons"
	appDescription = "Generates every iOS, Android and Web app icon size from a single source image."
)

func main() {
	rootCmd := clibase.New(appName, appDescription)

	generator.AddCmds(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		log.WithFields(
			log.Fields{
				"app.name": appName,
				"error":    err.Error(),
			},
		).Fatal("application exited with an error")
	}
}
