// Command server runs the HTTP server directly, without the CLI wrapper.
package main

import (
	"os"

	"github.com/bkormos/portico/internal/server"
	"github.com/bkormos/portico/pkg/logger"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
