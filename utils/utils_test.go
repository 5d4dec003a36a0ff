package utils

import "testing"

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP()
	if len(otp) != 6 {
		t.Fatalf("expected 6 digit OTP, got %q", otp)
	}
	for _, r := range otp {
		if r < '0' || r > '9' {
			t.Fatalf("expected digits only, got %q", otp)
		}
	}
}
