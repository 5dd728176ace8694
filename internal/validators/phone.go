package validators

import "strings"

// NormalizePhone reduz um WhatsApp formatado "(11) 91234-5678" aos dígitos
func NormalizePhone(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// IsPhoneValid aceita números brasileiros com DDD: 10 ou 11 dígitos
func IsPhoneValid(phone string) bool {
	digits := NormalizePhone(phone)
	return len(digits) == 10 || len(digits) == 11
}
