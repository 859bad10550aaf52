package keygen

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	_ "embed"
	"encoding/pem"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/ssh"
)

//go:embed admin_key.pub
var defaultAdminKey string

// DefaultAdminKey returns the embedded admin public key in authorized_keys format.
func DefaultAdminKey() string {
	return strings.TrimSpace(defaultAdminKey)
}

// KeyPair holds an RSA key pair in ready-to-use formats.
type KeyPair struct {
	// PrivateKey is the RSA private key in PEM-encoded PKCS#1 format.
	PrivateKey []byte
	// PublicKey is the public key in OpenSSH authorized_keys format.
	PublicKey []byte
}

// GenerateRSAKeyPair generates a new RSA key pair with the specified bit size.
func GenerateRSAKeyPair(bits int) (*KeyPair, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA private key: %w", err)
	}

	if err := privateKey.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate RSA private key: %w", err)
	}

	privateKeyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	})

	publicKey, err := ssh.NewPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH public key: %w", err)
	}

	return &KeyPair{
		PrivateKey: privateKeyPEM,
		PublicKey:  ssh.MarshalAuthorizedKey(publicKey),
	}, nil
}

// ValidateAuthorizedKey checks that key is a single parseable authorized_keys
// entry and returns it normalized (type, base64 blob and comment, no newline).
func ValidateAuthorizedKey(key string) (string, error) {
	pub, comment, _, rest, err := ssh.ParseAuthorizedKey([]byte(key))
	if err != nil {
		return "", fmt.Errorf("invalid SSH public key: %w", err)
	}
	if len(strings.TrimSpace(string(rest))) > 0 {
		return "", fmt.Errorf("invalid SSH public key: expected exactly one key")
	}

	normalized := strings.TrimSpace(string(ssh.MarshalAuthorizedKey(pub)))
	if comment != "" {
		normalized += " " + comment
	}
	return normalized, nil
}

// LoadAuthorizedKey reads and validates a public key file.
func LoadAuthorizedKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read public key %s: %w", path, err)
	}
	return ValidateAuthorizedKey(string(data))
}

// WritePrivateKey writes a PEM private key readable only by the owner.
func WritePrivateKey(path string, pemBytes []byte) error {
	if err := os.WriteFile(path, pemBytes, 0o600); err != nil {
		return fmt.Errorf("failed to write private key %s: %w", path, err)
	}
	return nil
}
