package ratelimit

import "strings"

// resolveEndpoint picks the throttle for a request. The health check is
// never limited. An exact path+method match wins; otherwise the longest
// matching "/"-terminated prefix; otherwise the global default.
func (c *Config) resolveEndpoint(path, method string) EndpointConfig {
	if path == "/health" && method == "GET" {
		return EndpointConfig{}
	}

	var best *EndpointConfig
	for i := range c.EndpointConfigs {
		ec := &c.EndpointConfigs[i]
		if ec.Method != method {
			continue
		}
		if ec.Path == path {
			return *ec
		}
		if strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			if best == nil || len(ec.Path) > len(best.Path) {
				best = ec
			}
		}
	}
	if best != nil {
		return *best
	}

	return EndpointConfig{Limit: c.DefaultLimit, Window: c.DefaultWindow}
}
