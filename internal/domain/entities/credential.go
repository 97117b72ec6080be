package entities

import "strings"

// CredentialKeyLength длина ключа, которую выдает сервис
const CredentialKeyLength = 32

// Credential API ключ сервиса сжатия
type Credential string

// CredentialSource источник, из которого получен ключ
type CredentialSource string

const (
	SourceFlag    CredentialSource = "flag"
	SourceDotfile CredentialSource = "dotfile"
	SourceEnv     CredentialSource = "env"
	SourceDotEnv  CredentialSource = "dotenv"
)

// CredentialResolution результат поиска ключа
type CredentialResolution struct {
	Credential Credential
	Source     CredentialSource
	// Origin уточняет источник: путь к файлу или имя переменной окружения
	Origin string
}

// Validate проверяет ключ. strict включает проверку длины.
func (c Credential) Validate(strict bool) error {
	if strings.TrimSpace(string(c)) == "" {
		return ErrNoCredential
	}
	if strict && len(c) != CredentialKeyLength {
		return ErrInvalidCredential
	}
	return nil
}

// Masked возвращает ключ, пригодный для вывода в лог
func (c Credential) Masked() string {
	const visible = 4
	if len(c) <= visible {
		return strings.Repeat("*", len(c))
	}
	return string(c[:visible]) + strings.Repeat("*", len(c)-visible)
}
