package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/jhoicas/biblioteca-web/internal/application/dto"
	"github.com/jhoicas/biblioteca-web/internal/infrastructure/apiclient"
	"github.com/jhoicas/biblioteca-web/pkg/jwt"
)

const (
	loginPath = "/Auth/Login"

	// MsgInvalidToken la API devolvió un token que no se puede leer.
	MsgInvalidToken = "Invalid session token"
)

// Session token y la identidad que se guardan en la sesión tras el login.
type Session struct {
	Token    string
	Identity dto.Identity
}

// AuthUseCase inicio de sesión contra la API de backend. No guarda estado:
// la sesión la persiste la capa HTTP.
type AuthUseCase struct {
	api       *apiclient.Client
	jwtSecret string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(api *apiclient.Client, jwtSecret string) *AuthUseCase {
	return &AuthUseCase{api: api, jwtSecret: jwtSecret}
}

// Login envía las credenciales a POST /Auth/Login. Si la API acepta, extrae el
// token del payload y la identidad de sus claims.
func (uc *AuthUseCase) Login(ctx context.Context, requestID string, in dto.LoginRequest) (*Session, dto.OperationResult) {
	result := uc.api.Send(ctx, apiclient.Auth{RequestID: requestID}, http.MethodPost, loginPath, nil, in)
	if !result.Success {
		return nil, result
	}

	token := extractToken(result)
	if token == "" {
		return nil, dto.Failed(apiclient.MsgCouldNotProcess)
	}
	sess, err := uc.Restore(token)
	if err != nil {
		return nil, dto.Failed(MsgInvalidToken)
	}
	return sess, dto.OperationResult{Success: true, Message: result.Message}
}

// Restore reconstruye la sesión a partir de un token guardado. Falla si el
// token es ilegible o expiró.
func (uc *AuthUseCase) Restore(token string) (*Session, error) {
	claims, err := jwt.Parse(uc.jwtSecret, token)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token: token,
		Identity: dto.Identity{
			UserID:   claims.ID(),
			UserName: claims.UserName,
			Email:    claims.Email,
			Role:     claims.Role,
		},
	}, nil
}

// extractToken acepta data como {"token": "..."} o directamente como string.
func extractToken(result dto.OperationResult) string {
	if data, ok := dto.DecodeData[dto.LoginData](result); ok && data.Token != "" {
		return strings.TrimSpace(data.Token)
	}
	if s, ok := dto.DecodeData[string](result); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
