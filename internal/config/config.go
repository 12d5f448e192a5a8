package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/tabs/internal/errors"
	"github.com/vango-dev/tabs/pkg/tabs"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "tabs.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultPage is the default page location.
	DefaultPage = "index.html"

	// DefaultReadTimeout is the default HTTP read timeout.
	DefaultReadTimeout = "30s"

	// DefaultRegion is the default AWS region for s3:// pages.
	DefaultRegion = "us-east-1"

	// DefaultServiceName names the service in traces.
	DefaultServiceName = "tabsd"

	// DefaultNamespace prefixes every metric name.
	DefaultNamespace = "tabs"
)

// Tracing exporters.
const (
	ExporterStdout = "stdout"
	ExporterNone   = "none"
)

// Config represents the complete tabs.json configuration.
type Config struct {
	// Page is the page markup location: a file path (relative to the config
	// file) or an s3://bucket/key URL.
	Page string `json:"page,omitempty"`

	// Markers names the attributes and class that identify tab groups.
	Markers MarkersConfig `json:"markers,omitempty"`

	// Server contains HTTP server settings.
	Server ServerConfig `json:"server,omitempty"`

	// S3 configures the client used for s3:// pages.
	S3 S3Config `json:"s3,omitempty"`

	// Tracing configures OpenTelemetry spans.
	Tracing TracingConfig `json:"tracing,omitempty"`

	// Metrics configures Prometheus collectors.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// MarkersConfig mirrors tabs.Markers.
type MarkersConfig struct {
	Root        string `json:"root,omitempty"`
	Button      string `json:"button,omitempty"`
	Panel       string `json:"panel,omitempty"`
	ActiveClass string `json:"activeClass,omitempty"`
}

// ServerConfig contains server settings.
type ServerConfig struct {
	Host        string `json:"host,omitempty"`
	Port        int    `json:"port,omitempty"`
	ReadTimeout string `json:"readTimeout,omitempty"`

	// MaxSessions caps concurrent WebSocket sessions. Zero means unlimited.
	MaxSessions int `json:"maxSessions,omitempty"`
}

// S3Config contains settings for loading pages from S3.
type S3Config struct {
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, e.g. for MinIO or LocalStack.
	Endpoint string `json:"endpoint,omitempty"`

	// UsePathStyle addresses buckets as endpoint/bucket instead of bucket.endpoint.
	UsePathStyle bool `json:"usePathStyle,omitempty"`
}

// TracingConfig contains tracing settings.
type TracingConfig struct {
	Enabled     bool   `json:"enabled,omitempty"`
	Exporter    string `json:"exporter,omitempty"`
	ServiceName string `json:"serviceName,omitempty"`
}

// MetricsConfig contains metrics settings.
type MetricsConfig struct {
	Namespace string `json:"namespace,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from the specified directory.
// It looks for tabs.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E121").
				WithDetail("No tabs.json found in " + filepath.Dir(path)).
				WithSuggestion("Create tabs.json or pass --page to serve a page without one")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse tabs.json: " + err.Error()).
			WithSuggestion("Check that tabs.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Page == "" {
		c.Page = DefaultPage
	}

	// Markers
	d := tabs.DefaultMarkers()
	if c.Markers.Root == "" {
		c.Markers.Root = d.Root
	}
	if c.Markers.Button == "" {
		c.Markers.Button = d.Button
	}
	if c.Markers.Panel == "" {
		c.Markers.Panel = d.Panel
	}
	if c.Markers.ActiveClass == "" {
		c.Markers.ActiveClass = d.ActiveClass
	}

	// Server
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = DefaultReadTimeout
	}

	if c.S3.Region == "" {
		c.S3.Region = DefaultRegion
	}

	// Tracing
	if c.Tracing.Exporter == "" {
		c.Tracing.Exporter = ExporterStdout
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = DefaultServiceName
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithDetailf("Port must be between 0 and 65535, got %d", c.Server.Port)
	}
	if _, err := c.ReadTimeout(); err != nil {
		return errors.New("E120").
			WithDetailf("server.readTimeout %q is not a duration", c.Server.ReadTimeout).
			WithSuggestion(`Use Go duration syntax such as "30s" or "1m"`)
	}
	if c.Server.MaxSessions < 0 {
		return errors.New("E120").WithDetail("server.maxSessions must not be negative")
	}
	switch c.Tracing.Exporter {
	case ExporterStdout, ExporterNone:
	default:
		return errors.New("E120").
			WithDetailf("Unknown tracing exporter %q", c.Tracing.Exporter).
			WithSuggestion(`Use "stdout" or "none"`)
	}
	if err := c.TabsMarkers().Validate(); err != nil {
		return errors.New("E120").WithDetail("markers").Wrap(err)
	}
	return nil
}

// SetAddress overrides host and port from a host:port string.
func (c *Config) SetAddress(addr string) error {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return errors.New("E122").WithDetailf("address %q", addr).Wrap(err)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("E122").WithDetailf("port %q", port)
	}
	c.Server.Host = host
	c.Server.Port = n
	return nil
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// ReadTimeout parses server.readTimeout.
func (c *Config) ReadTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Server.ReadTimeout)
}

// TabsMarkers converts the markers section for tabs.WithMarkers.
func (c *Config) TabsMarkers() tabs.Markers {
	return tabs.Markers{
		Root:        c.Markers.Root,
		Button:      c.Markers.Button,
		Panel:       c.Markers.Panel,
		ActiveClass: c.Markers.ActiveClass,
	}
}

// PageLocation returns the page location. Relative file paths resolve
// against the config file's directory; s3:// URLs are returned unchanged.
func (c *Config) PageLocation() string {
	if filepath.IsAbs(c.Page) || c.Dir() == "" || strings.Contains(c.Page, "://") {
		return c.Page
	}
	return filepath.Join(c.Dir(), c.Page)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindConfigDir walks up from startDir to the first directory containing
// tabs.json.
func FindConfigDir(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E121").
				WithDetail("No tabs.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory
// or its nearest parent holding tabs.json.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindConfigDir(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
