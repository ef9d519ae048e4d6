package config

const (
	// DefaultDesignFile is the design description read when -d is not given
	DefaultDesignFile = "design.yaml"
	// DefaultSimCommand launches the simulation harness
	DefaultSimCommand = "make"
	// DefaultResultsFile is the xUnit file the harness writes
	DefaultResultsFile = "results.xml"
	// DefaultOutputJSONFile is the persisted flow-result file name
	DefaultOutputJSONFile = "flow-results.json"
	// DefaultOutputJSONDir is the directory the flow-result file is written to
	DefaultOutputJSONDir = "flow"
	// DefaultResultPrefix prefixes the keys merged into the flow-result delta
	DefaultResultPrefix = "cocotb."
)

// Environment variables recognized by LoadEnv (also read from a .env file)
const (
	EnvSimCommand  = "COTB_SIM_COMMAND"
	EnvResultsFile = "COCOTB_RESULTS_FILE"
	EnvResolveX    = "COCOTB_RESOLVE_X"
)
