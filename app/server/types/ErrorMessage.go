package types

// ErrorMessage 是所有失败响应的统一结构
type ErrorMessage struct {
	Message string `json:"message"`
}
