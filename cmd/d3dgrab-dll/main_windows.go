//go:build windows

// The c-shared build of d3dgrab, meant to be loaded into a running graphical
// application by an injector:
//
//	GOOS=windows go build -buildmode=c-shared -o d3dgrab.dll ./cmd/d3dgrab-dll
//
// The injector calls GrabInit from a fresh thread after attach.
package main

import "C"

import (
	"github.com/bnema/d3dgrab"
	"github.com/bnema/d3dgrab/internal/config"
	"github.com/bnema/d3dgrab/internal/logger"
	"github.com/bnema/d3dgrab/internal/win32"
)

// GrabInit runs the acquisition once inside the host process and logs the
// outcome. The acquired device stays alive for whatever overlay code the
// embedding module runs next.
//
//export GrabInit
func GrabInit() {
	if err := config.Init(); err != nil {
		logger.Warnf("config: %v", err)
	}
	cfg := config.Get()
	if cfg.Logging.LogLevel != "" {
		logger.SetLevel(cfg.Logging.LogLevel)
	}

	if cfg.Console.Alloc {
		if err := win32.AllocConsole(); err != nil {
			logger.Debugf("AllocConsole: %v", err)
		}
	}

	dev, err := d3dgrab.AcquireDevice()
	if err != nil {
		logger.Errorf("error getting d3d9 device: %v", err)
		return
	}
	logger.Infof("d3d9 device acquired at %p", dev)
}

func main() {}
