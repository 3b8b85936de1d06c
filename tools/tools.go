package tools

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword gera o hash bcrypt (salt e custo embutidos no próprio hash).
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPasswordHash compara senha e hash em tempo constante.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateOtp sorteia um código de 6 dígitos uniforme em [100000, 999999].
// O limite inferior garante largura fixa sem zero à esquerda.
func GenerateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

// CheckPassword valida a política mínima de senha no cadastro.
func CheckPassword(password string) string {
	if len(password) < 6 {
		return "password"
	}
	return ""
}
