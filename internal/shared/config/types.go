package config

import "fmt"

type ServerConfig struct {
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// QAConfig holds the quality-sampling parameters.
type QAConfig struct {
	// BusinessTimezone is the IANA timezone used for day boundaries.
	BusinessTimezone string `mapstructure:"business_timezone"`
	// SpotCheckFraction is the target fraction of a day's debriefs to sample.
	SpotCheckFraction float64 `mapstructure:"spot_check_fraction"`
	// SelectionHour is the hour (business timezone) the daily selection runs.
	SelectionHour int `mapstructure:"selection_hour"`
}

type SlackConfig struct {
	WebhookURL      string `mapstructure:"webhook_url"`
	FollowupChannel string `mapstructure:"followup_channel"`
}

// JobFeedConfig configures the external job-data source client.
type JobFeedConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	AuthURL      string `mapstructure:"auth_url"`
	TenantID     string `mapstructure:"tenant_id"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	AppKey       string `mapstructure:"app_key"`
}
