// Package config holds the process-wide Gemini model configuration. The
// configuration is read once from the environment at startup and passed
// explicitly to the components that need it.
package config

import (
	"log"
	"os"
	"strings"
)

// Environment variables selecting the model for each role.
const (
	EnvWebSearchModel = "GEMINI_WEB_SEARCH_MODEL"
	EnvDefaultModel   = "GEMINI_DEFAULT_MODEL"
	EnvAdvancedModel  = "GEMINI_ADVANCED_MODEL"
)

const (
	defaultWebSearchModel = "gemini-flash-latest"
	defaultDefaultModel   = "gemini-flash-lite-latest"
	defaultAdvancedModel  = "gemini-2.5-pro"

	modelPrefix = "gemini-"
)

// Role identifies a logical purpose slot mapped to a concrete model identifier.
type Role string

const (
	RoleWebSearch Role = "webSearch"
	RoleDefault   Role = "default"
	RoleAdvanced  Role = "advanced"
)

// Config maps model roles to concrete Gemini model identifiers. Every field is
// guaranteed non-empty; it is immutable after construction.
type Config struct {
	WebSearchModel string `yaml:"webSearchModel" json:"webSearchModel"`
	DefaultModel   string `yaml:"defaultModel" json:"defaultModel"`
	AdvancedModel  string `yaml:"advancedModel" json:"advancedModel"`
}

// New builds a Config from the environment, falling back to the documented
// defaults. A value that does not look like a Gemini model identifier is
// rejected with a warning and the default is used instead.
func New() *Config {
	return &Config{
		WebSearchModel: modelFromEnv(EnvWebSearchModel, defaultWebSearchModel),
		DefaultModel:   modelFromEnv(EnvDefaultModel, defaultDefaultModel),
		AdvancedModel:  modelFromEnv(EnvAdvancedModel, defaultAdvancedModel),
	}
}

// Model returns the configured model identifier for the supplied role.
func (c *Config) Model(role Role) string {
	switch role {
	case RoleWebSearch:
		return c.WebSearchModel
	case RoleAdvanced:
		return c.AdvancedModel
	}
	return c.DefaultModel
}

// Resolve returns the model identifier to use for the supplied role. A
// non-empty caller override always wins; the resulting identifier is not
// validated against the upstream model catalogue.
func (c *Config) Resolve(role Role, override string) string {
	if override != "" {
		return override
	}
	return c.Model(role)
}

// Models lists all configured role to model mappings.
func (c *Config) Models() map[string]string {
	return map[string]string{
		string(RoleWebSearch): c.WebSearchModel,
		string(RoleDefault):   c.DefaultModel,
		string(RoleAdvanced):  c.AdvancedModel,
	}
}

func modelFromEnv(name string, defaultModel string) string {
	value := os.Getenv(name)
	if value == "" {
		return defaultModel
	}
	if !strings.HasPrefix(value, modelPrefix) {
		log.Printf("invalid model format in %v: %v, using default: %v", name, value, defaultModel)
		return defaultModel
	}
	return value
}
