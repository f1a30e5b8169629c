package speech

import "time"

// DefaultEngines is the lookup order when no engine is configured.
var DefaultEngines = []string{"espeak", "spd-say", "say"}

const DefaultTimeout = 30 * time.Second
