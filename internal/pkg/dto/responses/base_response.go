package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// OperationResponse is the reply of every outward training operation.
type OperationResponse struct {
	Result   interface{} `json:"result"`
	ErrorMsg string      `json:"ErrorMsg"`
}
