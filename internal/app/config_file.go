package app

import (
    "errors"
    "fmt"
    "os"
    "time"

    yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file settings schema. Nested sections map
// naturally to flags. This file doubles as the settings collaborator: the
// pipeline treats it purely as configuration input and never validates the
// API key format itself.
type FileConfig struct {
    Mode string `yaml:"mode" json:"mode"`

    Extract struct {
        MinContentLength int                 `yaml:"minContentLength" json:"minContentLength"`
        Readability      bool                `yaml:"readability" json:"readability"`
        Sites            map[string][]string `yaml:"sites" json:"sites"`
    } `yaml:"extract" json:"extract"`

    Fetch struct {
        UserAgent   string        `yaml:"ua" json:"ua"`
        Timeout     time.Duration `yaml:"timeout" json:"timeout"`
        MaxAttempts int           `yaml:"maxAttempts" json:"maxAttempts"`
    } `yaml:"fetch" json:"fetch"`

    LLM struct {
        BaseURL string `yaml:"base" json:"base"`
        Model   string `yaml:"model" json:"model"`
        APIKey  string `yaml:"key" json:"key"`
    } `yaml:"llm" json:"llm"`

    Store struct {
        Dir      string `yaml:"dir" json:"dir"`
        Capacity int    `yaml:"capacity" json:"capacity"`
    } `yaml:"store" json:"store"`

    Notify struct {
        Webhook string `yaml:"webhook" json:"webhook"`
    } `yaml:"notify" json:"notify"`

    Watch struct {
        Interval    time.Duration `yaml:"interval" json:"interval"`
        Quiet       time.Duration `yaml:"quiet" json:"quiet"`
        SettleDelay time.Duration `yaml:"settleDelay" json:"settleDelay"`
    } `yaml:"watch" json:"watch"`

    Settings struct {
        Language      string `yaml:"language" json:"language"`
        SummaryLength int    `yaml:"summaryLength" json:"summaryLength"`
        AutoExtract   bool   `yaml:"autoExtract" json:"autoExtract"`
    } `yaml:"settings" json:"settings"`

    Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads and decodes a YAML settings file.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    data, err := os.ReadFile(path)
    if err != nil {
        return fc, fmt.Errorf("read config: %w", err)
    }
    if err := yaml.Unmarshal(data, &fc); err != nil {
        return fc, fmt.Errorf("parse config: %w", err)
    }
    return fc, nil
}

// SaveConfigFile writes the settings back as YAML. Combined with
// LoadConfigFile this gives callers a partial-update path: load, mutate the
// fields of interest, save.
func SaveConfigFile(path string, fc FileConfig) error {
    if path == "" {
        return errors.New("empty config path")
    }
    data, err := yaml.Marshal(fc)
    if err != nil {
        return fmt.Errorf("encode config: %w", err)
    }
    return os.WriteFile(path, data, 0o644)
}

// Apply merges the file values into cfg, file values winning only where
// set. Zero values in the file leave the existing config untouched.
func (fc FileConfig) Apply(cfg *Config) {
    if fc.Mode != "" {
        cfg.Mode = fc.Mode
    }
    if fc.Extract.MinContentLength > 0 {
        cfg.MinContentLength = fc.Extract.MinContentLength
    }
    if fc.Extract.Readability {
        cfg.Readability = true
    }
    if len(fc.Extract.Sites) > 0 {
        cfg.Sites = fc.Extract.Sites
    }
    if fc.Fetch.UserAgent != "" {
        cfg.UserAgent = fc.Fetch.UserAgent
    }
    if fc.Fetch.Timeout > 0 {
        cfg.FetchTimeout = fc.Fetch.Timeout
    }
    if fc.Fetch.MaxAttempts > 0 {
        cfg.FetchMaxAttempts = fc.Fetch.MaxAttempts
    }
    if fc.LLM.BaseURL != "" {
        cfg.LLMBaseURL = fc.LLM.BaseURL
    }
    if fc.LLM.Model != "" {
        cfg.LLMModel = fc.LLM.Model
    }
    if fc.LLM.APIKey != "" {
        cfg.LLMAPIKey = fc.LLM.APIKey
    }
    if fc.Store.Dir != "" {
        cfg.StoreDir = fc.Store.Dir
    }
    if fc.Store.Capacity > 0 {
        cfg.StoreCapacity = fc.Store.Capacity
    }
    if fc.Notify.Webhook != "" {
        cfg.WebhookURL = fc.Notify.Webhook
    }
    if fc.Watch.Interval > 0 {
        cfg.WatchInterval = fc.Watch.Interval
    }
    if fc.Watch.Quiet > 0 {
        cfg.WatchQuiet = fc.Watch.Quiet
    }
    if fc.Watch.SettleDelay > 0 {
        cfg.AutoExtractDelay = fc.Watch.SettleDelay
    }
    if fc.Settings.Language != "" {
        cfg.Language = fc.Settings.Language
    }
    if fc.Settings.SummaryLength > 0 {
        cfg.SummaryLength = fc.Settings.SummaryLength
    }
    if fc.Settings.AutoExtract {
        cfg.AutoExtract = true
    }
    if fc.Verbose {
        cfg.Verbose = true
    }
}
