package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldBatchID    = "batch_id"
	FieldTopic      = "topic"
	FieldGroupID    = "group_id"
	FieldUserID     = "user_id"
	FieldProductID  = "product_id"
	FieldAction     = "action"
	FieldEventCount = "event_count"
)
