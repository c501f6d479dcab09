package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherGateway  WeatherGateway
	LocationGateway LocationGateway

	// Presentation
	StatePublisher StatePublisher

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
}
