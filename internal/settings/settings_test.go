package settings

import "testing"

func TestIsSecretKey(t *testing.T) {
	secret := []string{
		"api_password",
		"webhook_token",
		"stripe_secret",
		"s3_access_key",
		"WHATSAPP_API_TOKEN",
		"PaymentSecretRef",
	}
	for _, k := range secret {
		if !IsSecretKey(k) {
			t.Errorf("%q deveria ser tratada como segredo", k)
		}
	}

	plain := []string{
		"whatsapp_notifications_enabled",
		"whatsapp_webhook_url",
		"max_upload_mb",
		"theme",
	}
	for _, k := range plain {
		if IsSecretKey(k) {
			t.Errorf("%q não deveria ser tratada como segredo", k)
		}
	}
}

func TestRedact(t *testing.T) {
	if got := Redact("api_token", `"abc123"`); got != `"[REDACTED]"` {
		t.Errorf("valor de chave sensível deve ser redigido, got %s", got)
	}
	if got := Redact("theme", `"dark"`); got != `"dark"` {
		t.Errorf("valor de chave comum deve passar intacto, got %s", got)
	}
}
