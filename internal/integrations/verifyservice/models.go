package verifyservice

// verifyRequest тело запроса на проверку токена
type verifyRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Token       string `json:"token"`
}

// verifyResponse ответ сервиса проверки
type verifyResponse struct {
	Verified bool   `json:"verified"`
	Reason   string `json:"reason,omitempty"`
}
