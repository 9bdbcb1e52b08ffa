package authentication

// keystring.go keeps the API token in the OS keyring between kushctl runs.
import (
	"encoding/json"
	"errors"
	"time"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "kushctl"
	tokenKey    = "auth_token"
)

// ErrNotLoggedIn is returned when no token has been stored yet.
var ErrNotLoggedIn = errors.New("not logged in, run \"kushctl login\" first")

type StoredCredentials struct {
	Token    string    `json:"token"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	APIURL   string    `json:"apiUrl"`
	StoredAt time.Time `json:"storedAt"`
}

func StoreToken(creds *StoredCredentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return keyring.Set(serviceName, tokenKey, string(data))
}

func GetToken() (*StoredCredentials, error) {
	value, err := keyring.Get(serviceName, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, err
	}

	var creds StoredCredentials
	if err := json.Unmarshal([]byte(value), &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func DeleteToken() error {
	err := keyring.Delete(serviceName, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
