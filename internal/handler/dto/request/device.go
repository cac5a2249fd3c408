package request

type RegisterDeviceRequest struct {
	Token      string `json:"token" binding:"required"`
	DeviceName string `json:"device_name" binding:"max=100"`
}

type UnregisterDeviceRequest struct {
	Token string `json:"token" binding:"required"`
}
