// main is the entry point for the readiness CLI.
package main

import (
	"github.com/huangsam/readiness/cmd"
	"github.com/huangsam/readiness/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run command", err)
	}
	if err := cmd.StopProfiling(); err != nil {
		contract.LogWarn("Cannot stop profiling", err)
	}
}
