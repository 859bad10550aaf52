package handlers

import (
	"strings"

	"github.com/imamik/azdns/internal/config"
	"github.com/imamik/azdns/internal/provisioning"
	"github.com/imamik/azdns/internal/util/keygen"
)

// adminKeyBits is the RSA size of generated admin keys.
const adminKeyBits = 4096

// generateKeyPair can be replaced in tests.
var generateKeyPair = keygen.GenerateRSAKeyPair

// resolveAdminKey returns the public key installed on the VMs. An empty
// result keeps the embedded default key.
func resolveAdminKey(cfg *config.Config, observer provisioning.Observer) (string, error) {
	switch {
	case cfg.AdminKeyFile != "":
		key, err := keygen.LoadAuthorizedKey(cfg.AdminKeyFile)
		if err != nil {
			return "", &config.ConfigError{Field: "admin_key.file", Reason: err.Error()}
		}
		observer.Printf("Using admin key from %s", cfg.AdminKeyFile)
		return key, nil

	case cfg.GenerateAdminKey:
		pair, err := generateKeyPair(adminKeyBits)
		if err != nil {
			return "", err
		}
		if err := keygen.WritePrivateKey(cfg.KeyOutput, pair.PrivateKey); err != nil {
			return "", err
		}
		observer.Printf("Generated admin key, private key written to %s", cfg.KeyOutput)
		return strings.TrimSpace(string(pair.PublicKey)), nil

	default:
		return "", nil
	}
}
