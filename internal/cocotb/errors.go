package cocotb

// ConfigurationError indicates the design/testbench metadata cannot yield a
// runnable harness configuration. It aborts the flow step; there is nothing
// to retry.
type ConfigurationError struct {
	Design string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Design == "" {
		return "cocotb configuration: " + e.Reason
	}
	return "cocotb configuration for design " + e.Design + ": " + e.Reason
}

func newConfigurationError(design, reason string) error {
	return &ConfigurationError{Design: design, Reason: reason}
}
