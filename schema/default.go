package schema

// Default returns the built-in process-data schema: the logical tables the
// wire-protocol server exposes over the plant data store, plus the
// pg_stat_activity view clients use for connection monitoring.
func Default() Schema {
	return Schema{Tables: []Table{
		{
			Name:        "tagvalues",
			Description: "Current tag values from PLCs",
			Columns: []Column{
				{Name: "tag_name", Type: TypeText, Description: "Tag identifier"},
				{Name: "timestamp", Type: TypeTimestamp, Description: "Timestamp of the value"},
				{Name: "timestamp_ms", Type: TypeInt8, Description: "Timestamp in milliseconds"},
				{Name: "numeric_value", Type: TypeNumeric, Description: "Numeric value of the tag"},
				{Name: "string_value", Type: TypeText, Description: "String value of the tag"},
				{Name: "quality", Type: TypeText, Description: "Quality indicator"},
			},
		},
		{
			Name:        "loggedtagvalues",
			Description: "Historical tag data",
			Columns: []Column{
				{Name: "tag_name", Type: TypeText, Description: "Tag identifier"},
				{Name: "timestamp", Type: TypeTimestamp, Description: "Timestamp of the value"},
				{Name: "timestamp_ms", Type: TypeInt8, Description: "Timestamp in milliseconds"},
				{Name: "numeric_value", Type: TypeNumeric, Description: "Numeric value of the tag"},
				{Name: "string_value", Type: TypeText, Description: "String value of the tag"},
				{Name: "quality", Type: TypeText, Description: "Quality indicator"},
			},
		},
		{
			Name:        "activealarms",
			Description: "Currently active alarms",
			Columns:     alarmColumns(false),
		},
		{
			Name:        "loggedalarms",
			Description: "Historical alarm data",
			Columns:     alarmColumns(true),
		},
		{
			Name:        "taglist",
			Description: "Browse available tags",
			Columns: []Column{
				{Name: "tag_name", Type: TypeText, Description: "Tag identifier"},
				{Name: "display_name", Type: TypeText, Description: "Display name"},
				{Name: "object_type", Type: TypeText, Description: "Object type"},
				{Name: "data_type", Type: TypeText, Description: "Data type"},
			},
		},
		{
			Name:        "pg_stat_activity",
			Description: "Connection monitoring",
			Columns: []Column{
				{Name: "datid", Type: TypeInt4, Description: "Database OID"},
				{Name: "datname", Type: TypeText, Description: "Database name"},
				{Name: "pid", Type: TypeInt4, Description: "Process ID"},
				{Name: "usename", Type: TypeText, Description: "User name"},
				{Name: "application_name", Type: TypeText, Description: "Application name"},
				{Name: "client_addr", Type: TypeText, Description: "Client address"},
				{Name: "client_hostname", Type: TypeText, Description: "Client hostname"},
				{Name: "client_port", Type: TypeInt4, Description: "Client port"},
				{Name: "backend_start", Type: TypeTimestamp, Description: "Backend start time"},
				{Name: "query_start", Type: TypeTimestamp, Description: "Query start time"},
				{Name: "query_stop", Type: TypeTimestamp, Description: "Query stop time"},
				{Name: "state", Type: TypeText, Description: "Connection state"},
				{Name: "query", Type: TypeText, Description: "Current query"},
				{Name: "graphql_time", Type: TypeInt8, Description: "GraphQL execution time"},
				{Name: "datafusion_time", Type: TypeInt8, Description: "DataFusion execution time"},
				{Name: "overall_time", Type: TypeInt8, Description: "Overall execution time"},
				{Name: "last_alive_sent", Type: TypeTimestamp, Description: "Last keepalive timestamp"},
			},
		},
	}}
}

// alarmColumns builds the shared alarm column list. Logged alarms carry one
// extra trailing column recording how long the alarm stayed active.
func alarmColumns(logged bool) []Column {
	cols := []Column{
		{Name: "name", Type: TypeText, Description: "Alarm name"},
		{Name: "instance_id", Type: TypeInt4, Description: "Instance identifier"},
		{Name: "alarm_group_id", Type: TypeInt4, Description: "Alarm group identifier"},
		{Name: "raise_time", Type: TypeTimestamp, Description: "Time when alarm was raised"},
		{Name: "acknowledgment_time", Type: TypeTimestamp, Description: "Time when alarm was acknowledged"},
		{Name: "clear_time", Type: TypeTimestamp, Description: "Time when alarm was cleared"},
		{Name: "reset_time", Type: TypeTimestamp, Description: "Time when alarm was reset"},
		{Name: "modification_time", Type: TypeTimestamp, Description: "Last modification time"},
		{Name: "state", Type: TypeText, Description: "Current alarm state"},
		{Name: "priority", Type: TypeInt4, Description: "Alarm priority level"},
		{Name: "event_text", Type: TypeText, Description: "Event description"},
		{Name: "info_text", Type: TypeText, Description: "Additional information"},
		{Name: "origin", Type: TypeText, Description: "Origin of the alarm"},
		{Name: "area", Type: TypeText, Description: "Area where alarm occurred"},
		{Name: "value", Type: TypeText, Description: "Associated value"},
		{Name: "host_name", Type: TypeText, Description: "Host name"},
		{Name: "user_name", Type: TypeText, Description: "User name"},
	}
	if logged {
		cols = append(cols, Column{Name: "duration", Type: TypeText, Description: "Alarm duration"})
	}
	return cols
}
