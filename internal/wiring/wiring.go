// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/i18nhtml/internal/adapters/cas"
	_ "go.trai.ch/i18nhtml/internal/adapters/config"
	_ "go.trai.ch/i18nhtml/internal/adapters/fs"
	_ "go.trai.ch/i18nhtml/internal/adapters/graph"
	_ "go.trai.ch/i18nhtml/internal/adapters/hcldata"
	_ "go.trai.ch/i18nhtml/internal/adapters/logger"
	_ "go.trai.ch/i18nhtml/internal/adapters/metrics"
	_ "go.trai.ch/i18nhtml/internal/adapters/render"
	_ "go.trai.ch/i18nhtml/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/i18nhtml/internal/app"
	_ "go.trai.ch/i18nhtml/internal/engine/tech"
)
