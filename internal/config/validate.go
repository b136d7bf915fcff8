package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.APIKey) < 16 {
		return fmt.Errorf("auth.api_key must be at least 16 characters (got %d)", len(c.Auth.APIKey))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Protocol.DefaultPageSize < 1 {
		return fmt.Errorf("protocol.default_page_size must be > 0 (got %d)", c.Protocol.DefaultPageSize)
	}
	if c.Protocol.DefaultPageSize > c.Protocol.MaxPageSize {
		return fmt.Errorf("protocol.default_page_size (%d) must not exceed max_page_size (%d)",
			c.Protocol.DefaultPageSize, c.Protocol.MaxPageSize)
	}

	return nil
}
