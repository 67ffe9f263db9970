package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const transactionCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateTransactionID gera um identificador no formato TXN-XXXXXXX
func GenerateTransactionID() (string, error) {
	id, err := gonanoid.Generate(transactionCharacters, 7)
	if err != nil {
		return "", err
	}
	return "TXN-" + id, nil
}
