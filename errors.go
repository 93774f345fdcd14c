package asciink

// ConfigError reports render parameters that are inconsistent (zero grid
// dimensions, a resolution too small for the grid, and so on). It is the
// only fatal error kind in the pipeline: it indicates a caller bug and is
// returned before any rendering starts. Bad input data, by contrast, is
// always recovered locally so the display gets something to show.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "asciink: invalid configuration: " + e.Reason
}
