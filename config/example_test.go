package config_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xalexb/jsonconfig/config"
	filefetcher "github.com/0xalexb/jsonconfig/config/fetcher/file"
	jsonparser "github.com/0xalexb/jsonconfig/config/parser/json"
	yamlparser "github.com/0xalexb/jsonconfig/config/parser/yaml"
)

// AppConfig represents application configuration.
type AppConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// SetDefaults sets default values for the configuration.
func (c *AppConfig) SetDefaults() bool {
	changed := false

	if c.Host == "" {
		c.Host = "localhost"
		changed = true
	}

	if c.Port == 0 {
		c.Port = 8080
		changed = true
	}

	return changed
}

// Validate validates the configuration.
func (c *AppConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

// StaticDataFetcher implements config.DataFetcher with static data.
// Useful for unit tests that don't need file I/O.
type StaticDataFetcher struct {
	Data []byte
}

// Fetch returns the static data.
func (f *StaticDataFetcher) Fetch() ([]byte, error) {
	return f.Data, nil
}

func ExampleNew() {
	cfg := config.New(config.Mapping{
		{Key: "server", Value: config.Mapping{
			{Key: "host", Value: "localhost"},
			{Key: "port", Value: int64(5000)},
		}},
		{Key: "debug", Value: false},
	})

	port, _ := cfg.Get("server.port")
	fmt.Println(port)

	_, err := cfg.Get("server.timeout")
	fmt.Println(err)
	// Output:
	// 5000
	// no value exists for key "server.timeout"
}

func ExampleNode_Update() {
	cfg := config.New(config.Mapping{{Key: "server", Value: config.Mapping{{Key: "host", Value: "localhost"}}}})

	err := cfg.Update("server.port", int64(5000), false)
	fmt.Println(errors.Is(err, config.ErrUpsertDisabled))

	_ = cfg.Update("server.port", int64(5000), true)
	_ = cfg.Update("cache.ttl", int64(100), true)

	json, _ := cfg.ToJSON()
	fmt.Println(json)
	// Output:
	// true
	// {"server":{"host":"localhost","port":5000},"cache":{"ttl":100}}
}

func ExampleNode_Items() {
	cfg := config.New(config.Mapping{
		{Key: "a", Value: int64(1)},
		{Key: "b", Value: config.Mapping{{Key: "c", Value: "x"}}},
		{Key: "d", Value: true},
	})

	for key, value := range cfg.Items() {
		fmt.Printf("%s=%v\n", key, value)
	}
	// Output:
	// a=1
	// b.c=x
	// d=true
}

func ExampleNode_MergeWithEnv() {
	cfg := config.New(config.Mapping{{Key: "server", Value: config.Mapping{{Key: "port", Value: int64(5000)}}}})

	err := cfg.MergeWithEnv("APP", []string{
		"APP_SERVER_PORT=6000",
		"APP_CACHE__TTL=100",
		"OTHER_SERVER_PORT=1",
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	json, _ := cfg.ToJSON()
	fmt.Println(json)
	// Output: {"server":{"port":"6000"},"cache_ttl":"100"}
}

func ExampleWithOptionalFields() {
	cfg := config.New(
		config.Mapping{{Key: "server", Value: config.Mapping{{Key: "host", Value: "localhost"}}}},
		config.WithOptionalFields("server.timeout"),
	)

	timeout, err := cfg.Get("server.timeout")
	fmt.Println(timeout, err)
	fmt.Println(cfg.Contains("server.timeout"))
	// Output:
	// <nil> <nil>
	// false
}

func ExampleProvider() {
	// Load the document with a YAML parser and a static fetcher.
	// For file-based configuration, use filefetcher.NewFetcher(path) instead.
	cfg, err := config.Load(yamlparser.NewParser(), &StaticDataFetcher{
		Data: []byte("host: example.com\n"),
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	// An empty path binds the entire document, then defaults and validation run.
	result, err := config.Provider(&AppConfig{}, "")(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Host: %s, Port: %d\n", result.Host, result.Port)
	// Output: Host: example.com, Port: 8080
}

func ExampleProvider_fileDataFetcher() {
	dir, err := os.MkdirTemp("", "config-example")
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, "config.json")

	err = os.WriteFile(path, []byte(`{"api": {"host": "api.example.com", "port": 3000}}`), 0o600)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fetcher, err := filefetcher.NewFetcher(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	cfg, err := config.Load(jsonparser.NewParser(), fetcher)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	result, err := config.Provider(&AppConfig{}, "api")(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Host: %s, Port: %d\n", result.Host, result.Port)
	// Output: Host: api.example.com, Port: 3000
}
