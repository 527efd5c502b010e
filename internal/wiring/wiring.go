// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hdlc/internal/adapters/cas"
	_ "go.trai.ch/hdlc/internal/adapters/config"
	_ "go.trai.ch/hdlc/internal/adapters/fs"
	_ "go.trai.ch/hdlc/internal/adapters/logger"
	_ "go.trai.ch/hdlc/internal/adapters/msim"
	_ "go.trai.ch/hdlc/internal/adapters/shell"
	_ "go.trai.ch/hdlc/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/hdlc/internal/adapters/vhdl"
	// Register app nodes.
	_ "go.trai.ch/hdlc/internal/app"
)
