package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword возвращает hex-представление SHA-256 дайджеста пароля.
// Дайджест детерминирован и без соли: вход по учетным данным выполняется
// одним запросом по равенству username и дайджеста. Это не production-уровень
// защиты паролей; контракт хранилища требует именно детерминированного хеша.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
