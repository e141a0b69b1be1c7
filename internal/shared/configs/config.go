package configs

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Kafka    KafkaConfig    `mapstructure:"kafka" validate:"required"`
	Batching BatchingConfig `mapstructure:"batching" validate:"required"`
	Storage  StorageConfig  `mapstructure:"storage" validate:"required"`
}

// ServerConfig holds the ops HTTP server configuration (health + metrics).
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// KafkaConfig holds broker connection and topic configuration.
type KafkaConfig struct {
	Brokers     []string `mapstructure:"brokers" validate:"required,min=1,dive,required"`
	EventsTopic string   `mapstructure:"events_topic" validate:"required"`
	LogsTopic   string   `mapstructure:"logs_topic" validate:"required"`
	GroupID     string   `mapstructure:"group_id" validate:"required"`
}

// BatchingConfig holds the drain scheduler configuration.
type BatchingConfig struct {
	DrainInterval int `mapstructure:"drain_interval" validate:"required,min=1"` // seconds
}

// StorageConfig selects and configures the aggregate store backend.
type StorageConfig struct {
	Driver string            `mapstructure:"driver" validate:"required,oneof=mongo file"`
	Mongo  MongoConfig       `mapstructure:"mongo"`
	File   FileStorageConfig `mapstructure:"file"`
}

// MongoConfig holds the document store connection configuration.
// Required when storage.driver is "mongo".
type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// FileStorageConfig holds the file-backed store configuration.
// Required when storage.driver is "file".
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir"`
}
