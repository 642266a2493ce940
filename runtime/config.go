// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"encoding/json"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
)

type Config struct {
	TraceConfig trace.Config  `json:"traceConfig"`
	LogLevel    logging.Level `json:"logLevel"`
	// Prefixes every metric exposed by the runtime. Empty means no prefix.
	MetricsNamespace string `json:"metricsNamespace"`
}

func NewConfig() Config {
	return Config{
		TraceConfig: trace.Config{Enabled: false},
		LogLevel:    logging.Info,
	}
}

// ParseConfig overlays the JSON in [b] on top of [NewConfig]. An empty [b]
// yields the defaults.
func ParseConfig(b []byte) (Config, error) {
	c := NewConfig()
	if len(b) > 0 {
		if err := json.Unmarshal(b, &c); err != nil {
			return Config{}, err
		}
	}
	return c, nil
}
