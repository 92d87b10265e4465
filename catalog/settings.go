package catalog

// Server version advertised to clients. The numeric form follows the
// PostgreSQL convention clients parse to select wire-protocol behavior.
const (
	ServerVersion    = "15.0"
	ServerVersionNum = "150000"
)

// fixedSettings returns the pg_settings rows served to clients. Values are
// fixed for the process lifetime; boot and reset values always equal the
// current value.
func fixedSettings() []Setting {
	return []Setting{
		{
			Name:      "transaction_isolation",
			Value:     "read committed",
			Category:  "Client Connection Defaults / Statement Behavior",
			ShortDesc: "Sets the current transaction's isolation level.",
			Context:   "user",
			VarType:   "text",
			Source:    "override",
			EnumVals:  `{"serializable","repeatable read","read committed","read uncommitted"}`,
			BootVal:   "read committed",
			ResetVal:  "read committed",
		},
		{
			Name:      "application_name",
			Value:     "WinCC PGWire Protocol Server",
			Category:  "Preset Options",
			ShortDesc: "Application name for the connection.",
			Context:   "user",
			VarType:   "text",
			Source:    "default",
			EnumVals:  "NULL",
			BootVal:   "WinCC PGWire Protocol Server",
			ResetVal:  "WinCC PGWire Protocol Server",
		},
		{
			Name:      "client_encoding",
			Value:     "UTF8",
			Category:  "Preset Options",
			ShortDesc: "Sets the client-side encoding.",
			Context:   "user",
			VarType:   "text",
			Source:    "default",
			EnumVals:  "NULL",
			BootVal:   "UTF8",
			ResetVal:  "UTF8",
		},
		{
			Name:      "datestyle",
			Value:     "ISO, MDY",
			Category:  "Preset Options",
			ShortDesc: "Sets the display format for date and time values.",
			Context:   "user",
			VarType:   "text",
			Source:    "default",
			EnumVals:  `{"ISO, MDY","ISO, DMY"}`,
			BootVal:   "ISO, MDY",
			ResetVal:  "ISO, MDY",
		},
		{
			Name:      "extra_float_digits",
			Value:     "0",
			Category:  "Preset Options",
			ShortDesc: "Sets the number of digits displayed for floating-point values.",
			Context:   "user",
			VarType:   "integer",
			Source:    "default",
			MinVal:    "-3",
			MaxVal:    "3",
			EnumVals:  "NULL",
			BootVal:   "0",
			ResetVal:  "0",
		},
		{
			Name:      "max_identifier_length",
			Value:     "63",
			Category:  "Preset Options",
			ShortDesc: "Shows the maximum identifier length.",
			Context:   "internal",
			VarType:   "integer",
			Source:    "default",
			MinVal:    "63",
			MaxVal:    "63",
			EnumVals:  "NULL",
			BootVal:   "63",
			ResetVal:  "63",
		},
		{
			Name:      "server_version",
			Value:     ServerVersion,
			Category:  "Preset Options",
			ShortDesc: "Shows the server version.",
			Context:   "internal",
			VarType:   "text",
			Source:    "default",
			EnumVals:  "NULL",
			BootVal:   ServerVersion,
			ResetVal:  ServerVersion,
		},
		{
			Name:      "server_version_num",
			Value:     ServerVersionNum,
			Category:  "Preset Options",
			ShortDesc: "Shows the server version number.",
			Context:   "internal",
			VarType:   "integer",
			Source:    "default",
			MinVal:    ServerVersionNum,
			MaxVal:    ServerVersionNum,
			EnumVals:  "NULL",
			BootVal:   ServerVersionNum,
			ResetVal:  ServerVersionNum,
		},
		{
			Name:      "timezone",
			Value:     "UTC",
			Category:  "Preset Options",
			ShortDesc: "Sets the time zone for displaying and interpreting time stamps.",
			Context:   "user",
			VarType:   "text",
			Source:    "default",
			EnumVals:  `{"UTC"}`,
			BootVal:   "UTC",
			ResetVal:  "UTC",
		},
	}
}
