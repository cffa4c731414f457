package extension

import (
	"fmt"

	"github.com/gaiakodi/gaiacore/constant"
	"github.com/gaiakodi/gaiacore/log"
	"github.com/zalando/go-keyring"
)

// Service accounts hold the API keys for external debrid and resolver
// services. Credentials live in the system keyring, never in the settings
// file, so a settings backup cannot leak them.

// Service identifiers for credential storage.
const (
	ServiceOrion      = "orion"
	ServicePremiumize = "premiumize"
	ServiceOffCloud   = "offcloud"
	ServiceRealDebrid = "realdebrid"
)

// SetAccount persists a service credential to the system keyring.
func SetAccount(service, token string) error {
	if err := keyring.Set(constant.Name, service, token); err != nil {
		return fmt.Errorf("store %s credential: %w", service, err)
	}
	return nil
}

// Account retrieves a service credential, empty when none is stored.
func Account(service string) string {
	token, err := keyring.Get(constant.Name, service)
	if err != nil {
		log.Debugf("extension: no %s credential: %v", service, err)
		return ""
	}
	return token
}

// DeleteAccount removes a service credential.
func DeleteAccount(service string) error {
	err := keyring.Delete(constant.Name, service)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("delete %s credential: %w", service, err)
	}
	return nil
}

// Authenticated reports whether a credential is stored for the service.
func Authenticated(service string) bool {
	return Account(service) != ""
}
