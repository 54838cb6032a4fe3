package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfig []byte

type Config struct {
	DDNS     DDNSConfig     `yaml:"ddns"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	News     NewsConfig     `yaml:"news"`
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	LogLevel string         `yaml:"log_level"`
	LogDir   string         `yaml:"log_dir"`
}

type DDNSConfig struct {
	Provider string            `yaml:"provider"`
	Domain   string            `yaml:"domain"`
	Settings map[string]string `yaml:"settings"`
	Probe    ProbeConfig       `yaml:"probe"`
	LogFile  string            `yaml:"log_file"`
}

// ProbeConfig selects how the public IP is discovered.
// Mode is one of "greeting", "web" or "static".
type ProbeConfig struct {
	Mode    string        `yaml:"mode"`
	Address string        `yaml:"address"`
	URLs    []string      `yaml:"urls"`
	IP      string        `yaml:"ip"`
	Timeout time.Duration `yaml:"timeout"`
}

type SMTPConfig struct {
	Host      string        `yaml:"host"`
	Port      int           `yaml:"port"`
	User      string        `yaml:"user"`
	Password  string        `yaml:"password"`
	Recipient string        `yaml:"recipient"`
	Subject   string        `yaml:"subject"`
	Timeout   time.Duration `yaml:"timeout"`
}

type NewsConfig struct {
	FeedURL      string        `yaml:"feed_url"`
	PageURL      string        `yaml:"page_url"`
	EasyImageURL string        `yaml:"easy_image_url"`
	VoiceURL     string        `yaml:"voice_url"`
	FFmpeg       string        `yaml:"ffmpeg"`
	UserAgent    string        `yaml:"user_agent"`
	Timeout      time.Duration `yaml:"timeout"`
}

// DatabaseConfig enables the optional archive catalog and DNS change log.
// An empty URL disables both.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

func (d DatabaseConfig) Enabled() bool {
	return d.URL != ""
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

// Load reads the YAML config at path, or the built-in default when path is
// empty. ${VAR} references in values are expanded from the environment after
// .env is loaded. Missing values are not validated.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data := defaultConfig
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return Parse(data)
}

// Parse decodes data and then expands ${VAR} references in each scalar value,
// so expanded text is never read as YAML. Quoted values stay strings.
func Parse(data []byte) (*Config, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var cfg Config
	if root.Kind != 0 {
		expandEnv(&root)
		if err := root.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()

	return &cfg, nil
}

func expandEnv(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode {
		expanded := os.ExpandEnv(n.Value)
		if expanded == n.Value {
			return
		}
		n.Value = expanded
		// Plain scalars get their type from the expanded text.
		if n.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) == 0 {
			n.Tag = ""
		}
		return
	}
	for _, c := range n.Content {
		expandEnv(c)
	}
}

func (c *Config) setDefaults() {
	if c.DDNS.Provider == "" {
		c.DDNS.Provider = "alidns"
	}
	if c.DDNS.Probe.Mode == "" {
		c.DDNS.Probe.Mode = "greeting"
	}
	if c.DDNS.Probe.Address == "" {
		c.DDNS.Probe.Address = "ns1.dnspod.net:6666"
	}
	if c.DDNS.LogFile == "" {
		c.DDNS.LogFile = "ali_dynamic_dns.log"
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 465
	}
	if c.SMTP.Subject == "" {
		c.SMTP.Subject = "外网 IP 地址变更通知"
	}
	if c.News.FeedURL == "" {
		c.News.FeedURL = "http://www3.nhk.or.jp/news/easy/news-list.json"
	}
	if c.News.PageURL == "" {
		c.News.PageURL = "http://www3.nhk.or.jp/news/easy/{id}/{id}.html"
	}
	if c.News.EasyImageURL == "" {
		c.News.EasyImageURL = "http://www3.nhk.or.jp/news/easy/{id}/{file}"
	}
	if c.News.VoiceURL == "" {
		c.News.VoiceURL = "https://nhks-vh.akamaihd.net/i/news/easy/{file}/master.m3u8"
	}
	if c.News.FFmpeg == "" {
		c.News.FFmpeg = "ffmpeg"
	}
	if c.News.UserAgent == "" {
		c.News.UserAgent = "homescripts-newsarchiver/1.0"
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "homescripts"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "events"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "homescripts_events"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
