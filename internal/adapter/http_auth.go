package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/exo-explorer/models"
)

// Signup implements [AuthAdapter] via POST /auth/signup.
func (h *httpServerAdapter) Signup(ctx context.Context, credentials models.Credentials) (string, error) {
	var result models.MessageResponse
	req := h.newRequest(ctx).SetBody(credentials).SetResult(&result)

	if _, err := h.execute(req, http.MethodPost, "/auth/signup", "Signup"); err != nil {
		return "", err
	}
	return result.Message, nil
}

// Login implements [AuthAdapter] via POST /auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	var result models.MessageResponse
	req := h.newRequest(ctx).SetBody(credentials).SetResult(&result)

	if _, err := h.execute(req, http.MethodPost, "/auth/login", "Login"); err != nil {
		return "", err
	}
	return result.Message, nil
}

// VerifyOtp implements [AuthAdapter] via POST /auth/verify-otp. The returned
// token is not stored; the caller decides when the session starts.
func (h *httpServerAdapter) VerifyOtp(ctx context.Context, verification models.OtpVerificationRequest) (models.AuthResponse, error) {
	var result models.AuthResponse
	req := h.newRequest(ctx).SetBody(verification).SetResult(&result)

	if _, err := h.execute(req, http.MethodPost, "/auth/verify-otp", "VerifyOtp"); err != nil {
		return models.AuthResponse{}, err
	}
	return result, nil
}

// VerifyBackupCode implements [AuthAdapter] via POST /auth/verify-backup-code.
func (h *httpServerAdapter) VerifyBackupCode(ctx context.Context, verification models.BackupCodeVerificationRequest) (models.AuthResponse, error) {
	var result models.AuthResponse
	req := h.newRequest(ctx).SetBody(verification).SetResult(&result)

	if _, err := h.execute(req, http.MethodPost, "/auth/verify-backup-code", "VerifyBackupCode"); err != nil {
		return models.AuthResponse{}, err
	}
	return result, nil
}

// GenerateBackupCodes implements [AuthAdapter] via
// POST /auth/generate-backup-codes.
func (h *httpServerAdapter) GenerateBackupCodes(ctx context.Context, generate models.GenerateBackupCodesRequest) ([]string, error) {
	var codes []string
	req := h.newRequest(ctx).SetBody(generate).SetResult(&codes)

	if _, err := h.execute(req, http.MethodPost, "/auth/generate-backup-codes", "GenerateBackupCodes"); err != nil {
		return nil, err
	}
	return codes, nil
}
