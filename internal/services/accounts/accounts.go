// Package accounts loads the account credentials file used to pre-fill
// customer contact details for returning users. Authentication itself
// (passwords, cookies, sessions) is out of scope here; this package
// only serves the stored profile for a known username.
package accounts

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrAccountNotFound means no account exists for the username.
var ErrAccountNotFound = errors.New("account not found")

// Account is the stored profile for one username.
type Account struct {
	Name           string `yaml:"name" json:"name"`
	Email          string `yaml:"email" json:"email"`
	ZipCode        string `yaml:"zip_code" json:"zip_code"`
	Address        string `yaml:"address" json:"address"`
	PhoneNumber    string `yaml:"phone_number" json:"phone_number"`
	CustomerNumber string `yaml:"customer_number" json:"customer_number"`
}

// credentialsFile mirrors the on-disk layout:
//
//	credentials:
//	  usernames:
//	    taro:
//	      name: ...
//	      email: ...
type credentialsFile struct {
	Credentials struct {
		Usernames map[string]Account `yaml:"usernames"`
	} `yaml:"credentials"`
}

// Store holds the loaded accounts. Read-only after Load.
type Store struct {
	accounts map[string]Account
}

// Load reads the credentials YAML from disk.
func Load(path string) (*Store, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts file: %w", err)
	}

	var file credentialsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse accounts file: %w", err)
	}

	accounts := file.Credentials.Usernames
	if accounts == nil {
		accounts = map[string]Account{}
	}

	return &Store{accounts: accounts}, nil
}

// Lookup returns the stored profile for a username.
func (s *Store) Lookup(username string) (Account, error) {
	account, ok := s.accounts[username]
	if !ok {
		return Account{}, fmt.Errorf("%w: %q", ErrAccountNotFound, username)
	}
	return account, nil
}

// Len returns the number of loaded accounts.
func (s *Store) Len() int {
	return len(s.accounts)
}
