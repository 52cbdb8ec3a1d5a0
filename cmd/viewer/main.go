// Package main is the entry point for roomview, a first-person viewer for
// lit glTF rooms.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/config"
	"github.com/Faultbox/roomview/internal/engine/scene"
	"github.com/Faultbox/roomview/internal/logger"
	"github.com/Faultbox/roomview/internal/viewer"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	lc := cfg.Logging
	fileCfg := logger.FileConfig{
		Path:       lc.LogFile,
		MaxSizeMB:  lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
		MaxAgeDays: lc.MaxAgeDays,
		Compress:   lc.Compress,
	}
	if err := logger.InitWithFileConfig(lc.Level, fileCfg, true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("=== roomview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			logger.Error("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("path", path))
		}
	}

	desc, err := loadScene(cfg.Viewer.Scene)
	if err != nil {
		logger.Error("failed to load scene", zap.Error(err))
		os.Exit(1)
	}

	v, err := viewer.New(cfg, desc)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

// loadScene reads the scene descriptor, or returns the built-in room when
// no path is configured.
func loadScene(path string) (*scene.Descriptor, error) {
	if path == "" {
		logger.Info("using built-in scene")
		return scene.Default(), nil
	}
	desc, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Info("scene loaded", zap.String("path", path), zap.String("model", desc.Model))
	return desc, nil
}
