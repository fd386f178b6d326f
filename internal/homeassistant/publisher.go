package homeassistant

import (
	"context"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"isg-mqtt-bridge/internal/config"
	"isg-mqtt-bridge/internal/logger"
	"isg-mqtt-bridge/internal/modbus"
	"isg-mqtt-bridge/internal/mqtt"
)

// Publisher responsible for publishing data to Home Assistant
// Single Responsibility Principle - only handles publishing to HA
type Publisher struct {
	client     paho.Client
	config     *config.HAConfig
	mqttConfig *config.MQTTConfig
	topics     *mqtt.TopicContext
	sensors    []mqtt.Sensor
}

// NewPublisher creates a new publisher for Home Assistant
func NewPublisher(cfg *config.MQTTConfig, haCfg *config.HAConfig) *Publisher {
	opts := paho.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.Broker, cfg.Port))
	opts.SetClientID(cfg.ClientID + "_ha_publisher")
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)

	// The broker marks the bridge offline when the connection drops
	// without a clean shutdown
	opts.SetWill(haCfg.StatusTopic, "offline", 0, true)

	publisher := &Publisher{
		config:     haCfg,
		mqttConfig: cfg,
		topics:     mqtt.NewTopicContext(haCfg),
		sensors:    BuildSensors(cfg.BaseTopic),
	}

	opts.SetOnConnectHandler(func(client paho.Client) {
		logger.LogInfo("✅ HA Publisher connected to MQTT broker")
	})

	opts.SetConnectionLostHandler(func(client paho.Client, err error) {
		logger.LogError("❌ HA Publisher disconnected: %v", err)
	})

	publisher.client = paho.NewClient(opts)
	return publisher
}

// Connect connects the publisher to the broker with infinite retry
func (p *Publisher) Connect(ctx context.Context) error {
	retryDelay := time.Duration(p.mqttConfig.RetryDelay) * time.Millisecond
	if retryDelay == 0 {
		retryDelay = 5000 * time.Millisecond // Default 5 seconds
	}

	attempt := 1
	for {
		logger.LogInfo("🔄 Attempting to connect HA publisher to MQTT broker (attempt %d)...", attempt)

		if token := p.client.Connect(); token.Wait() && token.Error() != nil {
			logger.LogError("❌ HA Publisher connection failed (attempt %d): %v", attempt, token.Error())
			logger.LogInfo("⏳ Retrying in %.0f seconds...", retryDelay.Seconds())

			select {
			case <-ctx.Done():
				return fmt.Errorf("HA publisher connection cancelled: %w", ctx.Err())
			case <-time.After(retryDelay):
				attempt++
				continue
			}
		}

		// Token success does not guarantee the session is up yet
		connected := false
		for i := 0; i < 50; i++ {
			if p.client.IsConnected() {
				connected = true
				break
			}
			select {
			case <-ctx.Done():
				return fmt.Errorf("HA publisher connection cancelled during establishment: %w", ctx.Err())
			case <-time.After(100 * time.Millisecond):
			}
		}

		if connected {
			logger.LogInfo("✅ HA Publisher successfully connected to MQTT broker after %d attempts", attempt)
			return nil
		}

		logger.LogWarn("⏰ HA Publisher connection establishment timeout (attempt %d)", attempt)
		select {
		case <-ctx.Done():
			return fmt.Errorf("HA publisher connection cancelled during timeout: %w", ctx.Err())
		case <-time.After(retryDelay):
			attempt++
		}
	}
}

// Disconnect disconnects the publisher
func (p *Publisher) Disconnect() {
	if p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}

// Sensors returns the entity catalog the publisher serves.
func (p *Publisher) Sensors() []mqtt.Sensor {
	return p.sensors
}

// PublishAllDiscoveries publishes discovery configurations for all sensors
func (p *Publisher) PublishAllDiscoveries(ctx context.Context) error {
	for i := range p.sensors {
		sensor := &p.sensors[i]
		handler := p.topics.GetHandler(sensor.Handler)
		if err := handler.PublishDiscovery(ctx, p.client, sensor); err != nil {
			logger.LogError("❌ Error publishing discovery for %s: %v", sensor.Key, err)
			continue
		}

		// Small pause between publications
		time.Sleep(100 * time.Millisecond)
	}

	if err := p.PublishDiagnosticDiscovery(ctx); err != nil {
		logger.LogError("❌ Error publishing diagnostic discovery: %v", err)
	}

	return nil
}

// PublishReadings publishes the state of every sensor present in the
// poll result. Keys missing from the readings are skipped, so a partial
// poll leaves the absent entities at their previous state. A nil value
// publishes as JSON null and Home Assistant shows the entity unknown.
func (p *Publisher) PublishReadings(ctx context.Context, readings modbus.Readings) error {
	var firstErr error
	published := 0

	for i := range p.sensors {
		sensor := &p.sensors[i]
		value, present := readings[sensor.Key]
		if !present {
			continue
		}

		handler := p.topics.GetHandler(sensor.Handler)
		if err := handler.PublishState(ctx, p.client, sensor, value); err != nil {
			logger.LogWarn("⚠️ Error publishing state for %s: %v", sensor.Key, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		published++
	}

	logger.LogDebug("📊 Published %d sensor states", published)
	return firstErr
}

// PublishStatusOnline publishes "online" status - convenience method
func (p *Publisher) PublishStatusOnline(ctx context.Context) error {
	return p.statusTopic().PublishOnline(ctx, p.client)
}

// PublishStatusOffline publishes "offline" status - convenience method
func (p *Publisher) PublishStatusOffline(ctx context.Context) error {
	return p.statusTopic().PublishOffline(ctx, p.client)
}

// PublishDiagnostic publishes diagnostic information to Home Assistant
func (p *Publisher) PublishDiagnostic(ctx context.Context, code int, message string) error {
	return p.diagnosticTopic().PublishDiagnostic(ctx, p.client, code, message)
}

// PublishDiagnosticDiscovery publishes discovery configuration for diagnostic sensor
func (p *Publisher) PublishDiagnosticDiscovery(ctx context.Context) error {
	return p.diagnosticTopic().PublishDiscovery(ctx, p.client, nil)
}

func (p *Publisher) statusTopic() *mqtt.StatusTopic {
	return p.topics.GetHandler("status").(*mqtt.StatusTopic)
}

func (p *Publisher) diagnosticTopic() *mqtt.DiagnosticTopic {
	return p.topics.GetHandler("diagnostic").(*mqtt.DiagnosticTopic)
}
