package tools

// Tool names
const (
	ToolPressKeys         = "press_keys"
	ToolReadDisplay       = "read_display"
	ToolInspectCalculator = "inspect_calculator"
	ToolResetCalculator   = "reset_calculator"
	ToolListKeys          = "list_keys"
	ToolListCalculators   = "list_calculators"
)

// Shared parameter names
const (
	ParamCalculator = "calculator"
	ParamKeys       = "keys"
)

const calculatorParamDescription = "Name of the calculator to use (letters, digits, '_' or '-'); defaults to \"default\""
