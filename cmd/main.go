package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"isg-mqtt-bridge/internal/config"
	"isg-mqtt-bridge/internal/homeassistant"
	"isg-mqtt-bridge/internal/logger"
	"isg-mqtt-bridge/internal/modbus"
)

// Diagnostic error codes
const (
	DiagnosticOK               = 0
	DiagnosticMQTTDisconnected = 1001
	DiagnosticModbusError      = 1002
	DiagnosticDecodeError      = 1003
	DiagnosticConfigError      = 1004
)

// Application main application class
// Facade Pattern - simplified interface for complex system
type Application struct {
	config      *config.Config
	client      *modbus.Client
	coordinator *modbus.Coordinator
	publisher   *homeassistant.Publisher

	// ISG status tracking
	consecutiveErrors int
	isDeviceOnline    bool

	// Grace period for offline status - avoid oscillation for temporary errors
	errorGracePeriod   time.Duration
	firstErrorTime     time.Time
	statusSetToOffline bool

	// Performance tracking for cleaner output
	lastSummaryTime time.Time
	successfulPolls int
	errorPolls      int
}

// NewApplication creates a new application instance
func NewApplication(configPath string) (*Application, error) {
	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	// Initialize logging with level and output destination
	logger.Init(&cfg.Logging)
	logger.LogStartup("Logging initialized with level: %s", cfg.Logging.Level)

	// Create publisher for Home Assistant
	publisher := homeassistant.NewPublisher(&cfg.MQTT, &cfg.HomeAssistant)

	return &Application{
		config:    cfg,
		publisher: publisher,

		isDeviceOnline: true,
		// 15 seconds grace before marking offline
		errorGracePeriod: 15 * time.Second,

		lastSummaryTime: time.Now(),
	}, nil
}

// Start starts the application
func (app *Application) Start(ctx context.Context) error {
	logger.LogInfo("🚀 Starting ISG MQTT Bridge...")

	// Connect to the ISG
	client, err := modbus.NewClient(modbus.ClientConfig{
		Host:    app.config.Modbus.Host,
		Port:    app.config.Modbus.Port,
		Timeout: time.Duration(app.config.Modbus.Timeout) * time.Millisecond,
	})
	if err != nil {
		return fmt.Errorf("error connecting to ISG: %w", err)
	}
	app.client = client
	app.coordinator = modbus.NewCoordinator(client)
	logger.LogInfo("✅ Connected to ISG at %s:%d", app.config.Modbus.Host, app.config.Modbus.Port)

	// Connect publisher
	if err := app.publisher.Connect(ctx); err != nil {
		return fmt.Errorf("error connecting publisher: %w", err)
	}

	// Publish discovery configurations for Home Assistant
	if err := app.publisher.PublishAllDiscoveries(ctx); err != nil {
		logger.LogError("⚠️ Error publishing discovery configs: %v", err)
		app.publisher.PublishDiagnostic(ctx, DiagnosticConfigError, fmt.Sprintf("Discovery config error: %v", err))
	}

	// Publish online status
	if err := app.publisher.PublishStatusOnline(ctx); err != nil {
		logger.LogError("⚠️ Error publishing online status: %v", err)
	} else {
		app.publisher.PublishDiagnostic(ctx, DiagnosticOK, "ISG MQTT Bridge started successfully")
	}

	// Read all registers once so Home Assistant has data right away
	app.pollOnce(ctx)

	go app.pollLoop(ctx)
	go app.heartbeatLoop(ctx)

	logger.LogInfo("✅ ISG MQTT Bridge started successfully")
	return nil
}

// Stop stops the application
func (app *Application) Stop() {
	logger.LogInfo("🛑 Stopping ISG MQTT Bridge...")

	// Publish offline status before disconnecting
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.publisher.PublishStatusOffline(ctx); err != nil {
		logger.LogError("⚠️ Error publishing offline status: %v", err)
	} else {
		app.publisher.PublishDiagnostic(ctx, DiagnosticOK, "ISG MQTT Bridge stopped gracefully")
	}

	if app.client != nil {
		if err := app.client.Close(); err != nil {
			logger.LogWarn("⚠️ Error closing ISG connection: %v", err)
		}
	}
	app.publisher.Disconnect()

	logger.LogInfo("✅ ISG MQTT Bridge stopped")
}

// pollLoop runs the poll cycle on the configured scan interval.
func (app *Application) pollLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(app.config.Modbus.ScanInterval) * time.Second)
	defer ticker.Stop()

	logger.LogDebug("🔄 Polling started (interval: %ds)", app.config.Modbus.ScanInterval)

	for {
		select {
		case <-ctx.Done():
			logger.LogDebug("🔄 Polling stopped")
			return
		case <-ticker.C:
			app.pollOnce(ctx)
		}
	}
}

// pollOnce runs one full poll cycle and publishes the result.
func (app *Application) pollOnce(ctx context.Context) {
	readings, err := app.coordinator.Poll()
	if err != nil {
		app.errorPolls++

		// Only log errors occasionally to avoid spam
		if app.consecutiveErrors == 0 || app.consecutiveErrors%10 == 0 {
			logger.LogError("❌ Poll error: %v", err)
		}
		app.handleDeviceError(ctx)

		code := DiagnosticModbusError
		var decodeErr *modbus.DecodeError
		if errors.As(err, &decodeErr) {
			code = DiagnosticDecodeError
		}
		if pubErr := app.publisher.PublishDiagnostic(ctx, code, fmt.Sprintf("Poll error: %v", err)); pubErr != nil {
			logger.LogError("⚠️ Error publishing diagnostic: %v", pubErr)
		}
		return
	}

	// Successful poll - reset error counter
	app.handleDeviceSuccess(ctx)
	app.successfulPolls++

	if time.Since(app.lastSummaryTime) >= 5*time.Minute {
		logger.LogInfo("📊 Summary - Polls: %d ok, %d failed", app.successfulPolls, app.errorPolls)
		app.lastSummaryTime = time.Now()
		app.successfulPolls = 0
		app.errorPolls = 0
	}

	if id, ok := readings.Int(modbus.KeyControllerID); ok {
		logger.LogDebug("📈 Poll complete: controller %d, %d readings", id, len(readings))
	}

	if err := app.publisher.PublishReadings(ctx, readings); err != nil {
		logger.LogError("❌ State publication error: %v", err)
		if pubErr := app.publisher.PublishDiagnostic(ctx, DiagnosticMQTTDisconnected,
			fmt.Sprintf("State publication error: %v", err)); pubErr != nil {
			logger.LogError("⚠️ Error publishing diagnostic: %v", pubErr)
		}
	}
}

// handleDeviceError manages error counting and offline status with grace period
func (app *Application) handleDeviceError(ctx context.Context) {
	app.consecutiveErrors++

	// If this is the first error in the sequence, record the time
	if app.firstErrorTime.IsZero() {
		app.firstErrorTime = time.Now()
		logger.LogWarn("⚠️ First error detected, starting grace period of %.0f seconds", app.errorGracePeriod.Seconds())
	}

	timeSinceFirstError := time.Since(app.firstErrorTime)
	if timeSinceFirstError < app.errorGracePeriod {
		logger.LogDebug("🕐 Error %d in grace period (%.1fs/%.0fs) - keeping status online",
			app.consecutiveErrors, timeSinceFirstError.Seconds(), app.errorGracePeriod.Seconds())
		return
	}

	// Grace period expired - set status to offline if not already done
	if app.isDeviceOnline && !app.statusSetToOffline {
		app.isDeviceOnline = false
		app.statusSetToOffline = true
		logger.LogError("🔴 Grace period expired - ISG marked as OFFLINE after %d errors over %.1f seconds",
			app.consecutiveErrors, timeSinceFirstError.Seconds())

		if err := app.publisher.PublishStatusOffline(ctx); err != nil {
			logger.LogError("⚠️ Error publishing offline status: %v", err)
		}
	}
}

// handleDeviceSuccess resets error counter and changes status to online when functionality resumes
func (app *Application) handleDeviceSuccess(ctx context.Context) {
	app.consecutiveErrors = 0
	app.firstErrorTime = time.Time{}
	app.statusSetToOffline = false

	if !app.isDeviceOnline {
		app.isDeviceOnline = true
		logger.LogInfo("🟢 ISG marked as ONLINE - functionality restored")

		if err := app.publisher.PublishStatusOnline(ctx); err != nil {
			logger.LogError("⚠️ Error publishing online status: %v", err)
		}
		if err := app.publisher.PublishDiagnostic(ctx, DiagnosticOK, "Functionality restored - ISG back online"); err != nil {
			logger.LogError("⚠️ Error publishing recovery diagnostic: %v", err)
		}
	}
}

// heartbeatLoop sends periodic "online" status to maintain availability
func (app *Application) heartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.LogDebug("🔇 Heartbeat loop stopped")
			return
		case <-ticker.C:
			// Only send heartbeat if we're currently marked as online
			if app.isDeviceOnline {
				if err := app.publisher.PublishStatusOnline(ctx); err != nil {
					logger.LogError("⚠️ Heartbeat failed: %v", err)
				}
			}
		}
	}
}

// DiagnosticMode runs diagnostic tests to help troubleshoot connectivity issues
func (app *Application) DiagnosticMode(ctx context.Context) error {
	logger.LogInfo("🔍 Starting diagnostic mode...")

	// Test 1: ISG Modbus connectivity and identity
	logger.LogInfo("🔍 Test 1: ISG Modbus/TCP Communication (%s:%d)",
		app.config.Modbus.Host, app.config.Modbus.Port)
	readings, err := app.coordinator.Poll()
	if err != nil {
		logger.LogError("❌ ISG communication failed: %v", err)
		logger.LogInfo("💡 Possible issues:")
		logger.LogInfo("   - ISG is unreachable on the network")
		logger.LogInfo("   - ISG Modbus/TCP is disabled in the ISG web interface")
		logger.LogInfo("   - Wrong host or port in configuration")
		return fmt.Errorf("ISG communication failed: %w", err)
	}
	if id, ok := readings.Int(modbus.KeyControllerID); ok {
		logger.LogInfo("✅ ISG communication successful - Controller ID: %d", id)
	}

	// Test 2: MQTT publishing
	logger.LogInfo("🔍 Test 2: MQTT Broker Publishing")
	if err := app.publisher.PublishStatusOnline(ctx); err != nil {
		logger.LogError("❌ MQTT publishing failed: %v", err)
		return fmt.Errorf("MQTT publishing failed: %w", err)
	}
	logger.LogInfo("✅ MQTT publishing successful")

	logger.LogInfo("🎉 All diagnostic tests passed!")
	return nil
}

func main() {
	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT and SIGTERM for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Parse command line arguments
	configPath := ""
	diagnosticMode := false

	for i, arg := range os.Args[1:] {
		if arg == "--help" || arg == "-h" {
			fmt.Printf("Usage: %s [config_path] [--diagnostic]\n", os.Args[0])
			fmt.Printf("  config_path: Path to configuration file (optional)\n")
			fmt.Printf("  --diagnostic: Run diagnostic mode to test connectivity\n")
			return
		} else if arg == "--diagnostic" {
			diagnosticMode = true
		} else if i == 0 { // First argument is config path
			configPath = arg
		}
	}

	// Create application
	app, err := NewApplication(configPath)
	if err != nil {
		logger.LogError("Application creation error: %v", err)
		os.Exit(1)
	}

	// Run diagnostic mode if requested
	if diagnosticMode {
		logger.LogInfo("🔍 Running diagnostic mode...")

		client, err := modbus.NewClient(modbus.ClientConfig{
			Host:    app.config.Modbus.Host,
			Port:    app.config.Modbus.Port,
			Timeout: time.Duration(app.config.Modbus.Timeout) * time.Millisecond,
		})
		if err != nil {
			logger.LogError("ISG connection error: %v", err)
			os.Exit(1)
		}
		app.client = client
		app.coordinator = modbus.NewCoordinator(client)

		if err := app.publisher.Connect(ctx); err != nil {
			logger.LogError("Publisher connection error: %v", err)
			os.Exit(1)
		}

		if err := app.DiagnosticMode(ctx); err != nil {
			logger.LogError("Diagnostic failed: %v", err)
			os.Exit(1)
		}

		logger.LogInfo("✅ Diagnostic completed successfully")
		return
	}

	// Start application
	if err := app.Start(ctx); err != nil {
		logger.LogError("Application start error: %v", err)
		os.Exit(1)
	}

	// Wait for stop signal
	<-sigChan
	logger.LogInfo("📢 Stop signal received...")
	cancel()

	// Stop application
	app.Stop()
}
