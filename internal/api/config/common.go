package config

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Cron      CronConfig      `mapstructure:"cron"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Producer ProducerConfig `mapstructure:"producer"`
	Topics   TopicsConfig   `mapstructure:"topics"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ProducerConfig struct {
	RetryMax       int `mapstructure:"retry_max"`
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// TopicsConfig 每个平台独立的派发主题
type TopicsConfig struct {
	Facebook  string `mapstructure:"facebook"`
	Instagram string `mapstructure:"instagram"`
	Youtube   string `mapstructure:"youtube"`
	Website   string `mapstructure:"website"`
}

// AnalyticsConfig 聚合口径，latest 或 sum_all
type AnalyticsConfig struct {
	Policy string `mapstructure:"policy"`
}

// CacheConfig 汇总接口缓存配置
type CacheConfig struct {
	TTLMinutes int `mapstructure:"ttl_minutes"`
}

// CronConfig 定时任务配置
type CronConfig struct {
	RedispatchSpec string `mapstructure:"redispatch_spec"`
}
