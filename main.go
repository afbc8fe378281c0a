package main

import (
	"context"
	"os"

	"github.com/projecteru2/core/log"

	"github.com/projecteru2/vmreport/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.WithFunc("main").Error(context.Background(), err, "vmreport failed")
		os.Exit(1)
	}
}
