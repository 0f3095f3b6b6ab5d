package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da Graph API
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// IsTokenExpired verifica se o erro é de token expirado ou invalidado
func (e *ErrorResponse) IsTokenExpired() bool {
	// 190 é "token inválido"; 460, 463 e 467 são os subcódigos de sessão invalidada/expirada
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

func (e *ErrorResponse) String() string {
	return fmt.Sprintf("%s (code=%d, subcode=%d, fbtrace_id=%s)", e.Error.Message, e.Error.Code, e.Error.ErrorSubcode, e.Error.FBTraceID)
}
