package main

import (
	"fmt"

	"github.com/rollinbe/CodeScribe-CLI/internal/cli"
	"github.com/rollinbe/CodeScribe-CLI/internal/utils"
)

// main is the entry point for the codescribe command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
